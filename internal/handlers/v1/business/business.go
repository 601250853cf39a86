package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Business is the API response model for a business.
type Business struct {
	ID        string `json:"id" doc:"Business UUID"`
	Name      string `json:"name" doc:"Business name"`
	OwnerID   string `json:"owner_id" doc:"UUID of the owning user"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func newBusiness(b *service.Business) Business {
	return Business{
		ID:        b.ID.String(),
		Name:      b.Name,
		OwnerID:   b.OwnerID.String(),
		CreatedAt: httperr.Timestamp(b.CreatedAt),
	}
}

type BusinessBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"255" doc:"Business name"`
}

type CreateBusinessInput struct {
	Body BusinessBody
}

type UpdateBusinessInput struct {
	ID   string `path:"id" doc:"Business UUID"`
	Body BusinessBody
}

type BusinessIDInput struct {
	ID string `path:"id" doc:"Business UUID"`
}

type BusinessOutput struct {
	Body Business
}

type ListBusinessesOutput struct {
	Body struct {
		Businesses []Business `json:"businesses" doc:"Businesses owned by the caller"`
	}
}

type businessService interface {
	List(ctx context.Context, actor uuid.UUID) ([]*service.Business, error)
	Create(ctx context.Context, actor uuid.UUID, name string) (*service.Business, error)
	Get(ctx context.Context, actor, id uuid.UUID) (*service.Business, error)
	Update(ctx context.Context, actor, id uuid.UUID, name string) (*service.Business, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// Handler serves /v1/businesses. Only the owner can see or change a business.
type Handler struct {
	BusinessService businessService
}

func NewHandler(svc businessService) *Handler {
	return &Handler{BusinessService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Businesses"}
	huma.Register(api, huma.Operation{
		OperationID: "list-businesses",
		Method:      http.MethodGet,
		Path:        "/v1/businesses",
		Summary:     "List owned businesses",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-business",
		Method:        http.MethodPost,
		Path:          "/v1/businesses",
		Summary:       "Create business",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-business",
		Method:      http.MethodGet,
		Path:        "/v1/businesses/{id}",
		Summary:     "Get business",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-business",
		Method:      http.MethodPatch,
		Path:        "/v1/businesses/{id}",
		Summary:     "Rename business",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-business",
		Method:        http.MethodDelete,
		Path:          "/v1/businesses/{id}",
		Summary:       "Delete business",
		Description:   "Deletes the business with its cashbooks, members and lookups.",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListBusinessesOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businesses, err := h.BusinessService.List(ctx, actor)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list businesses")
	}

	out := &ListBusinessesOutput{}
	out.Body.Businesses = make([]Business, len(businesses))
	for i, b := range businesses {
		out.Body.Businesses[i] = newBusiness(b)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateBusinessInput) (*BusinessOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	created, err := h.BusinessService.Create(ctx, actor, input.Body.Name)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create business")
	}
	return &BusinessOutput{Body: newBusiness(created)}, nil
}

func (h *Handler) get(ctx context.Context, input *BusinessIDInput) (*BusinessOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	found, err := h.BusinessService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get business")
	}
	return &BusinessOutput{Body: newBusiness(found)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateBusinessInput) (*BusinessOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.BusinessService.Update(ctx, actor, id, input.Body.Name)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update business")
	}
	return &BusinessOutput{Body: newBusiness(updated)}, nil
}

func (h *Handler) delete(ctx context.Context, input *BusinessIDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.BusinessService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete business")
	}
	return nil, nil
}
