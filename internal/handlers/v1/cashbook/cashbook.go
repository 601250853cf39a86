package cashbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Cashbook is the API response model for a cashbook.
type Cashbook struct {
	ID         string `json:"id" doc:"Cashbook UUID"`
	BusinessID string `json:"business_id" doc:"Business UUID"`
	Name       string `json:"name" doc:"Cashbook name"`
	IsDefault  bool   `json:"is_default" doc:"Whether this is the business's default cashbook"`
	CreatedAt  string `json:"created_at" doc:"RFC3339 creation time"`
}

func newCashbook(c *service.Cashbook) Cashbook {
	return Cashbook{
		ID:         c.ID.String(),
		BusinessID: c.BusinessID.String(),
		Name:       c.Name,
		IsDefault:  c.IsDefault,
		CreatedAt:  httperr.Timestamp(c.CreatedAt),
	}
}

// RoleInfo is the API response model for the caller's role in a cashbook.
type RoleInfo struct {
	Role      string `json:"role" enum:"OWNER,ADMIN,EDITOR,VIEWER" doc:"Effective role"`
	CanCreate bool   `json:"can_create" doc:"Whether transactions can be recorded"`
	CanEdit   bool   `json:"can_edit" doc:"Whether transactions can be edited"`
	CanDelete bool   `json:"can_delete" doc:"Whether transactions can be deleted"`
}

type CreateCashbookBody struct {
	Name       string `json:"name" required:"true" minLength:"1" maxLength:"255" doc:"Cashbook name"`
	BusinessID string `json:"business_id,omitempty" doc:"Business UUID; defaults to the caller's first business"`
}

type UpdateCashbookBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"255" doc:"Cashbook name"`
}

type CreateCashbookInput struct {
	Body CreateCashbookBody
}

type UpdateCashbookInput struct {
	ID   string `path:"id" doc:"Cashbook UUID"`
	Body UpdateCashbookBody
}

type CashbookIDInput struct {
	ID string `path:"id" doc:"Cashbook UUID"`
}

type CashbookOutput struct {
	Body Cashbook
}

type ListCashbooksOutput struct {
	Body struct {
		Cashbooks []Cashbook `json:"cashbooks" doc:"Cashbooks of every business the caller owns or belongs to"`
	}
}

type RoleOutput struct {
	Body RoleInfo
}

type cashbookService interface {
	List(ctx context.Context, actor uuid.UUID) ([]*service.Cashbook, error)
	Get(ctx context.Context, actor, id uuid.UUID) (*service.Cashbook, error)
	Create(ctx context.Context, actor uuid.UUID, name string, businessID uuid.NullUUID) (*service.Cashbook, error)
	Update(ctx context.Context, actor, id uuid.UUID, name string) (*service.Cashbook, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
	SetDefault(ctx context.Context, actor, id uuid.UUID) (*service.Cashbook, error)
	UserRole(ctx context.Context, actor, id uuid.UUID) (*service.RoleInfo, error)
}

// Handler serves /v1/cashbooks.
type Handler struct {
	CashbookService cashbookService
}

func NewHandler(svc cashbookService) *Handler {
	return &Handler{CashbookService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Cashbooks"}
	huma.Register(api, huma.Operation{
		OperationID: "list-cashbooks",
		Method:      http.MethodGet,
		Path:        "/v1/cashbooks",
		Summary:     "List cashbooks",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-cashbook",
		Method:        http.MethodPost,
		Path:          "/v1/cashbooks",
		Summary:       "Create cashbook",
		Description:   "Creates a cashbook. Without a business, the caller's first owned business is used and one is provisioned when they own none.",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-cashbook",
		Method:      http.MethodGet,
		Path:        "/v1/cashbooks/{id}",
		Summary:     "Get cashbook",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-cashbook",
		Method:      http.MethodPatch,
		Path:        "/v1/cashbooks/{id}",
		Summary:     "Rename cashbook",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-cashbook",
		Method:        http.MethodDelete,
		Path:          "/v1/cashbooks/{id}",
		Summary:       "Delete cashbook",
		Description:   "Deletes the cashbook and its transactions. Requires ADMIN or the business owner.",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
	huma.Register(api, huma.Operation{
		OperationID: "set-default-cashbook",
		Method:      http.MethodPatch,
		Path:        "/v1/cashbooks/{id}/set-default",
		Summary:     "Make cashbook the default",
		Description: "Atomically clears the previous default of the business.",
		Tags:        tags,
	}, h.setDefault)
	huma.Register(api, huma.Operation{
		OperationID: "get-cashbook-user-role",
		Method:      http.MethodGet,
		Path:        "/v1/cashbooks/{id}/user-role",
		Summary:     "Get the caller's role",
		Tags:        tags,
	}, h.userRole)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListCashbooksOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	cashbooks, err := h.CashbookService.List(ctx, actor)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list cashbooks")
	}

	out := &ListCashbooksOutput{}
	out.Body.Cashbooks = make([]Cashbook, len(cashbooks))
	for i, c := range cashbooks {
		out.Body.Cashbooks[i] = newCashbook(c)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateCashbookInput) (*CashbookOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseOptionalID("business_id", input.Body.BusinessID)
	if err != nil {
		return nil, err
	}

	created, err := h.CashbookService.Create(ctx, actor, input.Body.Name, businessID)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create cashbook")
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("cashbookID", created.ID.String())
	}
	return &CashbookOutput{Body: newCashbook(created)}, nil
}

func (h *Handler) get(ctx context.Context, input *CashbookIDInput) (*CashbookOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	found, err := h.CashbookService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get cashbook")
	}
	return &CashbookOutput{Body: newCashbook(found)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateCashbookInput) (*CashbookOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.CashbookService.Update(ctx, actor, id, input.Body.Name)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update cashbook")
	}
	return &CashbookOutput{Body: newCashbook(updated)}, nil
}

func (h *Handler) delete(ctx context.Context, input *CashbookIDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.CashbookService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete cashbook")
	}
	return nil, nil
}

func (h *Handler) setDefault(ctx context.Context, input *CashbookIDInput) (*CashbookOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var updated *service.Cashbook
	err = logging.Timed(ctx, "setDefaultMs", func() error {
		updated, err = h.CashbookService.SetDefault(ctx, actor, id)
		return err
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to set default cashbook")
	}
	return &CashbookOutput{Body: newCashbook(updated)}, nil
}

func (h *Handler) userRole(ctx context.Context, input *CashbookIDInput) (*RoleOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	info, err := h.CashbookService.UserRole(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get role")
	}
	return &RoleOutput{Body: RoleInfo{
		Role:      string(info.Role),
		CanCreate: info.CanCreate,
		CanEdit:   info.CanEdit,
		CanDelete: info.CanDelete,
	}}, nil
}
