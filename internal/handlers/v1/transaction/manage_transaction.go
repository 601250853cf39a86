package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type TransactionIDInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type TransactionOutput struct {
	Body Transaction
}

// UpdateTransactionBody changes only the fields present. An empty party_id clears the party.
// The transaction date and time never change.
type UpdateTransactionBody struct {
	Type          *string `json:"type,omitempty" doc:"IN or OUT"`
	Amount        *string `json:"amount,omitempty" doc:"Positive decimal amount with at most two decimals"`
	Remark        *string `json:"remark,omitempty" doc:"Free-text remark"`
	CategoryID    *string `json:"category_id,omitempty" doc:"Category UUID"`
	PartyID       *string `json:"party_id,omitempty" doc:"Party UUID, empty to clear"`
	PaymentModeID *string `json:"payment_mode_id,omitempty" doc:"Payment mode UUID"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// transactionManager is the interface for reading and changing one transaction.
type transactionManager interface {
	Get(ctx context.Context, actor, id uuid.UUID) (*service.Transaction, error)
	Update(ctx context.Context, actor, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// ManageTransactionHandler handles GET, PATCH and DELETE /v1/transactions/{id}.
type ManageTransactionHandler struct {
	TransactionService transactionManager
}

func NewManageTransactionHandler(svc transactionManager) *ManageTransactionHandler {
	return &ManageTransactionHandler{TransactionService: svc}
}

func (h *ManageTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Changes the given fields. Requires EDITOR or above.",
		Tags:        []string{"Transactions"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Description:   "Requires ADMIN or the business owner.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *ManageTransactionHandler) get(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Get(ctx, actor, id)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to get transaction")
	}
	return &TransactionOutput{Body: NewTransaction(tx, nil)}, nil
}

// parseUpdateTransactionBody maps present fields onto a patch.
func parseUpdateTransactionBody(body *UpdateTransactionBody) (service.TransactionPatch, error) {
	var patch service.TransactionPatch
	if body.Type != nil {
		patch.Type = omit.From(*body.Type)
	}
	if body.Remark != nil {
		patch.Remark = omit.From(*body.Remark)
	}
	if body.Amount != nil {
		amount, err := httperr.ParseAmount(*body.Amount)
		if err != nil {
			return patch, err
		}
		patch.Amount = omit.From(amount)
	}
	if body.CategoryID != nil {
		id, err := httperr.ParseID("category_id", *body.CategoryID)
		if err != nil {
			return patch, err
		}
		patch.CategoryID = omit.From(id)
	}
	if body.PaymentModeID != nil {
		id, err := httperr.ParseID("payment_mode_id", *body.PaymentModeID)
		if err != nil {
			return patch, err
		}
		patch.PaymentModeID = omit.From(id)
	}
	if body.PartyID != nil {
		if *body.PartyID == "" {
			patch.PartyID.Null()
		} else {
			id, err := httperr.ParseID("party_id", *body.PartyID)
			if err != nil {
				return patch, err
			}
			patch.PartyID.Set(id)
		}
	}
	return patch, nil
}

func (h *ManageTransactionHandler) update(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Update(ctx, actor, id, patch)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update transaction")
	}
	return &TransactionOutput{Body: NewTransaction(tx, nil)}, nil
}

func (h *ManageTransactionHandler) delete(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to delete transaction")
	}
	return nil, nil
}
