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

// Party is the API response model for a customer or supplier.
type Party struct {
	ID         string  `json:"id" doc:"Party UUID"`
	BusinessID string  `json:"business_id" doc:"Business UUID"`
	Name       string  `json:"name" doc:"Party name"`
	Phone      *string `json:"phone" doc:"Contact number"`
}

func newParty(p *service.Party) Party {
	return Party{
		ID:         p.ID.String(),
		BusinessID: p.BusinessID.String(),
		Name:       p.Name,
		Phone:      p.Phone,
	}
}

type CreatePartyInput struct {
	Body struct {
		BusinessID string  `json:"business_id" required:"true" doc:"Business UUID"`
		Name       string  `json:"name" required:"true" maxLength:"255" doc:"Party name"`
		Phone      *string `json:"phone,omitempty" maxLength:"20" doc:"Contact number"`
	}
}

type UpdatePartyInput struct {
	ID   string `path:"id" doc:"Party UUID"`
	Body struct {
		Name  *string `json:"name,omitempty" maxLength:"255" doc:"Party name"`
		Phone *string `json:"phone,omitempty" maxLength:"20" doc:"Contact number, empty to clear"`
	}
}

type PartyOutput struct {
	Body Party
}

type ListPartiesOutput struct {
	Body struct {
		Parties []Party `json:"parties"`
	}
}

type partyService interface {
	List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*service.Party, error)
	Get(ctx context.Context, actor, id uuid.UUID) (*service.Party, error)
	Create(ctx context.Context, actor uuid.UUID, input service.PartyInput) (*service.Party, error)
	Update(ctx context.Context, actor, id uuid.UUID, patch service.PartyPatch) (*service.Party, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// PartyHandler serves /v1/parties.
type PartyHandler struct {
	PartyService partyService
}

func NewPartyHandler(svc partyService) *PartyHandler {
	return &PartyHandler{PartyService: svc}
}

func (h *PartyHandler) Register(api huma.API) {
	tags := []string{"Parties"}
	huma.Register(api, huma.Operation{
		OperationID: "list-parties",
		Method:      http.MethodGet,
		Path:        "/v1/parties",
		Summary:     "List parties",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-party",
		Method:        http.MethodPost,
		Path:          "/v1/parties",
		Summary:       "Create party",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-party",
		Method:      http.MethodGet,
		Path:        "/v1/parties/{id}",
		Summary:     "Get party",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-party",
		Method:      http.MethodPatch,
		Path:        "/v1/parties/{id}",
		Summary:     "Update party",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-party",
		Method:        http.MethodDelete,
		Path:          "/v1/parties/{id}",
		Summary:       "Delete party",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *PartyHandler) list(ctx context.Context, input *ListInput) (*ListPartiesOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseOptionalID("business", input.Business)
	if err != nil {
		return nil, err
	}
	parties, err := h.PartyService.List(ctx, actor, businessID)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list parties")
	}

	out := &ListPartiesOutput{}
	out.Body.Parties = make([]Party, len(parties))
	for i, p := range parties {
		out.Body.Parties[i] = newParty(p)
	}
	return out, nil
}

func (h *PartyHandler) create(ctx context.Context, input *CreatePartyInput) (*PartyOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseID("business_id", input.Body.BusinessID)
	if err != nil {
		return nil, err
	}
	created, err := h.PartyService.Create(ctx, actor, service.PartyInput{
		BusinessID: businessID,
		Name:       input.Body.Name,
		Phone:      input.Body.Phone,
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create party")
	}
	return &PartyOutput{Body: newParty(created)}, nil
}

func (h *PartyHandler) get(ctx context.Context, input *IDInput) (*PartyOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	found, err := h.PartyService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get party")
	}
	return &PartyOutput{Body: newParty(found)}, nil
}

func (h *PartyHandler) update(ctx context.Context, input *UpdatePartyInput) (*PartyOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	patch := service.PartyPatch{Name: omit.FromPtr(input.Body.Name)}
	if phone := input.Body.Phone; phone != nil {
		if *phone == "" {
			patch.Phone.Null()
		} else {
			patch.Phone.Set(*phone)
		}
	}

	updated, err := h.PartyService.Update(ctx, actor, id, patch)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update party")
	}
	return &PartyOutput{Body: newParty(updated)}, nil
}

func (h *PartyHandler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.PartyService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete party")
	}
	return nil, nil
}
