package lookup

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Category is the API response model for a transaction category.
type Category struct {
	ID         string `json:"id" doc:"Category UUID"`
	BusinessID string `json:"business_id" doc:"Business UUID"`
	Name       string `json:"name" doc:"Category name"`
	Type       string `json:"type" enum:"IN,OUT,BOTH" doc:"Directions the category is meant for"`
}

func newCategory(c *service.Category) Category {
	return Category{
		ID:         c.ID.String(),
		BusinessID: c.BusinessID.String(),
		Name:       c.Name,
		Type:       c.Type,
	}
}

type CreateCategoryInput struct {
	Body struct {
		BusinessID string `json:"business_id" required:"true" doc:"Business UUID"`
		Name       string `json:"name" required:"true" maxLength:"255" doc:"Category name"`
		Type       string `json:"type,omitempty" doc:"IN, OUT or BOTH; BOTH when omitted"`
	}
}

type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body struct {
		Name *string `json:"name,omitempty" maxLength:"255" doc:"Category name"`
		Type *string `json:"type,omitempty" doc:"IN, OUT or BOTH"`
	}
}

type CategoryOutput struct {
	Body Category
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories"`
	}
}

type categoryService interface {
	List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*service.Category, error)
	Get(ctx context.Context, actor, id uuid.UUID) (*service.Category, error)
	Create(ctx context.Context, actor uuid.UUID, input service.CategoryInput) (*service.Category, error)
	Update(ctx context.Context, actor, id uuid.UUID, patch service.CategoryPatch) (*service.Category, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// CategoryHandler serves /v1/categories.
type CategoryHandler struct {
	CategoryService categoryService
}

func NewCategoryHandler(svc categoryService) *CategoryHandler {
	return &CategoryHandler{CategoryService: svc}
}

func (h *CategoryHandler) Register(api huma.API) {
	tags := []string{"Categories"}
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get category",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete category",
		Description:   "Transactions that used the category keep existing without one.",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *CategoryHandler) list(ctx context.Context, input *ListInput) (*ListCategoriesOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseOptionalID("business", input.Business)
	if err != nil {
		return nil, err
	}
	categories, err := h.CategoryService.List(ctx, actor, businessID)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list categories")
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = newCategory(c)
	}
	return out, nil
}

func (h *CategoryHandler) create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseID("business_id", input.Body.BusinessID)
	if err != nil {
		return nil, err
	}
	created, err := h.CategoryService.Create(ctx, actor, service.CategoryInput{
		BusinessID: businessID,
		Name:       input.Body.Name,
		Type:       input.Body.Type,
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create category")
	}
	return &CategoryOutput{Body: newCategory(created)}, nil
}

func (h *CategoryHandler) get(ctx context.Context, input *IDInput) (*CategoryOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	found, err := h.CategoryService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get category")
	}
	return &CategoryOutput{Body: newCategory(found)}, nil
}

func (h *CategoryHandler) update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.CategoryService.Update(ctx, actor, id, service.CategoryPatch{
		Name: omit.FromPtr(input.Body.Name),
		Type: omit.FromPtr(input.Body.Type),
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update category")
	}
	return &CategoryOutput{Body: newCategory(updated)}, nil
}

func (h *CategoryHandler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.CategoryService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete category")
	}
	return nil, nil
}
