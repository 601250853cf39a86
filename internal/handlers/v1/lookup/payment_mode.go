package lookup

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// PaymentMode is the API response model for a payment mode such as Cash or UPI.
type PaymentMode struct {
	ID         string `json:"id" doc:"Payment mode UUID"`
	BusinessID string `json:"business_id" doc:"Business UUID"`
	Name       string `json:"name" doc:"Payment mode name"`
}

func newPaymentMode(p *service.PaymentMode) PaymentMode {
	return PaymentMode{
		ID:         p.ID.String(),
		BusinessID: p.BusinessID.String(),
		Name:       p.Name,
	}
}

type CreatePaymentModeInput struct {
	Body struct {
		BusinessID string `json:"business_id" required:"true" doc:"Business UUID"`
		Name       string `json:"name" required:"true" maxLength:"100" doc:"Payment mode name"`
	}
}

type UpdatePaymentModeInput struct {
	ID   string `path:"id" doc:"Payment mode UUID"`
	Body struct {
		Name string `json:"name" required:"true" maxLength:"100" doc:"Payment mode name"`
	}
}

type PaymentModeOutput struct {
	Body PaymentMode
}

type ListPaymentModesOutput struct {
	Body struct {
		PaymentModes []PaymentMode `json:"payment_modes"`
	}
}

type paymentModeService interface {
	List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*service.PaymentMode, error)
	Get(ctx context.Context, actor, id uuid.UUID) (*service.PaymentMode, error)
	Create(ctx context.Context, actor, businessID uuid.UUID, name string) (*service.PaymentMode, error)
	Update(ctx context.Context, actor, id uuid.UUID, name string) (*service.PaymentMode, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// PaymentModeHandler serves /v1/payment-modes.
type PaymentModeHandler struct {
	PaymentModeService paymentModeService
}

func NewPaymentModeHandler(svc paymentModeService) *PaymentModeHandler {
	return &PaymentModeHandler{PaymentModeService: svc}
}

func (h *PaymentModeHandler) Register(api huma.API) {
	tags := []string{"Payment modes"}
	huma.Register(api, huma.Operation{
		OperationID: "list-payment-modes",
		Method:      http.MethodGet,
		Path:        "/v1/payment-modes",
		Summary:     "List payment modes",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-payment-mode",
		Method:        http.MethodPost,
		Path:          "/v1/payment-modes",
		Summary:       "Create payment mode",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-payment-mode",
		Method:      http.MethodGet,
		Path:        "/v1/payment-modes/{id}",
		Summary:     "Get payment mode",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-payment-mode",
		Method:      http.MethodPatch,
		Path:        "/v1/payment-modes/{id}",
		Summary:     "Rename payment mode",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-payment-mode",
		Method:        http.MethodDelete,
		Path:          "/v1/payment-modes/{id}",
		Summary:       "Delete payment mode",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *PaymentModeHandler) list(ctx context.Context, input *ListInput) (*ListPaymentModesOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseOptionalID("business", input.Business)
	if err != nil {
		return nil, err
	}
	modes, err := h.PaymentModeService.List(ctx, actor, businessID)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list payment modes")
	}

	out := &ListPaymentModesOutput{}
	out.Body.PaymentModes = make([]PaymentMode, len(modes))
	for i, m := range modes {
		out.Body.PaymentModes[i] = newPaymentMode(m)
	}
	return out, nil
}

func (h *PaymentModeHandler) create(ctx context.Context, input *CreatePaymentModeInput) (*PaymentModeOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseID("business_id", input.Body.BusinessID)
	if err != nil {
		return nil, err
	}
	created, err := h.PaymentModeService.Create(ctx, actor, businessID, input.Body.Name)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create payment mode")
	}
	return &PaymentModeOutput{Body: newPaymentMode(created)}, nil
}

func (h *PaymentModeHandler) get(ctx context.Context, input *IDInput) (*PaymentModeOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	found, err := h.PaymentModeService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get payment mode")
	}
	return &PaymentModeOutput{Body: newPaymentMode(found)}, nil
}

func (h *PaymentModeHandler) update(ctx context.Context, input *UpdatePaymentModeInput) (*PaymentModeOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.PaymentModeService.Update(ctx, actor, id, input.Body.Name)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update payment mode")
	}
	return &PaymentModeOutput{Body: newPaymentMode(updated)}, nil
}

func (h *PaymentModeHandler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.PaymentModeService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete payment mode")
	}
	return nil, nil
}
