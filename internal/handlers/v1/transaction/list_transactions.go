package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in responses.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"max_creation_time" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	FilterParams
	Position        int    `query:"position" minimum:"0" doc:"Offset of the page"`
	Limit           int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, 20 when omitted"`
	MaxCreationTime string `query:"max_creation_time" doc:"Snapshot from a previous page's cursor, RFC3339"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	Totals       Totals                  `json:"totals" doc:"Totals over every matching transaction"`
	NextCursor   *ListTransactionsCursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, actor uuid.UUID, query service.TransactionQuery, cursor *service.TransactionCursor) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the filtered transactions newest first with running balances, using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// Without any paging parameter, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, *service.TransactionCursor, error) {
	query, err := parseFilterParams(&input.FilterParams)
	if err != nil {
		return query, nil, err
	}

	if input.Position == 0 && input.Limit == 0 && input.MaxCreationTime == "" {
		return query, nil, nil
	}
	if input.Position < 0 {
		return query, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	cursor := &service.TransactionCursor{Position: input.Position, Limit: input.Limit}
	if input.MaxCreationTime != "" {
		cursor.MaxCreationTime, err = time.Parse(time.RFC3339, input.MaxCreationTime)
		if err != nil {
			return query, nil, huma.NewError(http.StatusBadRequest, "invalid max_creation_time", err)
		}
	}
	return query, cursor, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	query, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var page *service.TransactionPage
	err = logging.Timed(ctx, "listTransactionsMs", func() error {
		page, err = h.TransactionService.List(ctx, actor, query, requestCursor)
		return err
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Rows))
	}

	resp := ListTransactionsResponseBody{
		Transactions: NewRows(page.Rows),
		Totals:       NewTotals(page.Totals),
	}
	if page.Next != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        page.Next.Position,
			Limit:           page.Next.Limit,
			MaxCreationTime: page.Next.MaxCreationTime.UTC().Format(time.RFC3339Nano),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

// SummaryInput is the Huma input for the filtered totals.
type SummaryInput struct {
	FilterParams
}

// SummaryOutput is the Huma output for the filtered totals.
type SummaryOutput struct {
	Body Totals
}

type transactionSummarizer interface {
	Summary(ctx context.Context, actor uuid.UUID, query service.TransactionQuery) (ledger.Totals, error)
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	TransactionService transactionSummarizer
}

func NewSummaryHandler(svc transactionSummarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Summarize transactions",
		Description: "Returns the totals of the filtered transactions of one cashbook.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	query, err := parseFilterParams(&input.FilterParams)
	if err != nil {
		return nil, err
	}

	totals, err := h.TransactionService.Summary(ctx, actor, query)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to summarize transactions")
	}
	return &SummaryOutput{Body: NewTotals(totals)}, nil
}
