package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// The transaction date and time are stamped by the server.
type CreateTransactionBody struct {
	CashbookID    string `json:"cashbook_id" required:"true" doc:"Cashbook UUID"`
	Type          string `json:"type" required:"true" doc:"IN or OUT"`
	Amount        string `json:"amount" required:"true" doc:"Positive decimal amount with at most two decimals"`
	Remark        string `json:"remark,omitempty" doc:"Free-text remark"`
	CategoryID    string `json:"category_id,omitempty" doc:"Category UUID, mandatory"`
	PartyID       string `json:"party_id,omitempty" doc:"Party UUID"`
	PaymentModeID string `json:"payment_mode_id,omitempty" doc:"Payment mode UUID, mandatory"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, actor uuid.UUID, input service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a cash in or cash out entry in a cashbook, dated now.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses the identifiers and amount of the request.
// Semantic validation (type, positive amount, mandatory references) is left to the service.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionInput, error) {
	var (
		parsed service.TransactionInput
		err    error
	)
	if parsed.CashbookID, err = httperr.ParseID("cashbook_id", input.Body.CashbookID); err != nil {
		return parsed, err
	}
	if parsed.Amount, err = httperr.ParseAmount(input.Body.Amount); err != nil {
		return parsed, err
	}
	if parsed.CategoryID, err = httperr.ParseOptionalID("category_id", input.Body.CategoryID); err != nil {
		return parsed, err
	}
	if parsed.PartyID, err = httperr.ParseOptionalID("party_id", input.Body.PartyID); err != nil {
		return parsed, err
	}
	if parsed.PaymentModeID, err = httperr.ParseOptionalID("payment_mode_id", input.Body.PaymentModeID); err != nil {
		return parsed, err
	}
	parsed.Type = input.Body.Type
	parsed.Remark = input.Body.Remark
	return parsed, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	parsed, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var created *service.Transaction
	err = logging.Timed(ctx, "createTransactionMs", func() error {
		created, err = h.TransactionService.Create(ctx, actor, parsed)
		return err
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to create transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}
	return &CreateTransactionOutput{Body: NewTransaction(created, nil)}, nil
}
