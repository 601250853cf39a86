package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoPaging(t *testing.T) {
	query, cursor, err := parseListTransactionsInput(&ListTransactionsInput{})
	require.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Equal(t, ledger.DurationAllTime, query.Filter.Duration)
}

func TestParseListTransactionsInput_Filters(t *testing.T) {
	cashbookID, categoryID := newID(), newID()
	input := &ListTransactionsInput{
		FilterParams: FilterParams{
			Cashbook:  cashbookID.String(),
			Type:      "OUT",
			Category:  categoryID.String(),
			Member:    "not-a-uuid",
			Duration:  "LAST_7_DAYS",
			StartDate: "2025-06-01",
			Search:    "rent",
		},
		Position:        40,
		Limit:           10,
		MaxCreationTime: "2025-06-15T08:00:00.5Z",
	}

	query, cursor, err := parseListTransactionsInput(input)
	require.NoError(t, err)

	assert.Equal(t, cashbookID, *query.Filter.CashbookID)
	assert.Equal(t, ledger.Out, *query.Filter.Type)
	assert.Equal(t, categoryID, *query.Filter.CategoryID)
	assert.Nil(t, query.Filter.PartyID)
	assert.Equal(t, ledger.DurationLast7Days, query.Filter.Duration)
	assert.Equal(t, civil.Date{Year: 2025, Month: 6, Day: 1}, *query.Filter.StartDate)
	assert.Equal(t, "rent", query.Filter.Search)
	assert.Equal(t, "not-a-uuid", query.MemberID, "member stays raw so the service can be lenient")

	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, time.Date(2025, 6, 15, 8, 0, 0, 500000000, time.UTC), cursor.MaxCreationTime)
}

func TestParseListTransactionsInput_Invalid(t *testing.T) {
	cases := map[string]ListTransactionsInput{
		"type":              {FilterParams: FilterParams{Type: "SIDEWAYS"}},
		"duration":          {FilterParams: FilterParams{Duration: "FOREVER"}},
		"cashbook":          {FilterParams: FilterParams{Cashbook: "abc"}},
		"start_date":        {FilterParams: FilterParams{StartDate: "06/01/2025"}},
		"max_creation_time": {MaxCreationTime: "not-a-date"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseListTransactionsInput(&input)
			assert.Error(t, err)
		})
	}
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	actor := newID()
	tx := sampleTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, actor, mock.Anything, (*service.TransactionCursor)(nil)).
		Return(&service.TransactionPage{
			Rows: []ledger.Row[service.Transaction]{{Item: *tx, RunningBalance: decimal.RequireFromString("-40")}},
			Totals: ledger.Totals{
				TotalIn:    decimal.Zero,
				TotalOut:   decimal.RequireFromString("40"),
				NetBalance: decimal.RequireFromString("-40"),
			},
		}, nil)

	resp := newTestAPI(t, mockSvc, &actor).Get("/v1/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)

	got := body.Transactions[0]
	assert.Equal(t, tx.ID.String(), got.ID)
	assert.Equal(t, "OUT", got.Type)
	assert.Equal(t, "40.00", got.Amount)
	assert.Equal(t, "-40.00", *got.RunningBalance)
	assert.Equal(t, "Rent", *got.CategoryName)
	assert.Nil(t, got.PartyID)
	assert.Equal(t, "2025-06-10", got.TransactionDate)
	assert.Equal(t, "14:30:05", got.TransactionTime)
	assert.Equal(t, "Asha Rao", got.CreatedByName)

	assert.Equal(t, Totals{TotalIn: "0.00", TotalOut: "40.00", NetBalance: "-40.00"}, body.Totals)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_NextCursor(t *testing.T) {
	actor := newID()
	snapshot := time.Date(2025, 6, 10, 14, 30, 5, 123000, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, actor, mock.Anything, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil && c.Limit == 2 && c.Position == 0 && c.MaxCreationTime.IsZero()
	})).Return(&service.TransactionPage{
		Rows: []ledger.Row[service.Transaction]{{Item: *sampleTransaction()}, {Item: *sampleTransaction()}},
		Next: &service.TransactionCursor{Position: 2, Limit: 2, MaxCreationTime: snapshot},
	}, nil)

	resp := newTestAPI(t, mockSvc, &actor).Get("/v1/transactions?limit=2")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)
	assert.Equal(t, 2, body.NextCursor.Limit)

	echoed, err := time.Parse(time.RFC3339, body.NextCursor.MaxCreationTime)
	require.NoError(t, err)
	assert.True(t, echoed.Equal(snapshot), "the snapshot keeps sub-second precision")
}

func TestHTTP_ListTransactions_WithCursorAndFilters(t *testing.T) {
	actor, cashbookID := newID(), newID()
	maxTime := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("List", mock.Anything, actor,
		mock.MatchedBy(func(q service.TransactionQuery) bool {
			return q.Filter.CashbookID != nil && *q.Filter.CashbookID == cashbookID &&
				q.Filter.Duration == ledger.DurationThisMonth && q.Filter.Search == "100.00"
		}),
		mock.MatchedBy(func(c *service.TransactionCursor) bool {
			return c != nil && c.Position == 40 && c.Limit == 10 && c.MaxCreationTime.Equal(maxTime)
		}),
	).Return(&service.TransactionPage{}, nil)

	resp := newTestAPI(t, mockSvc, &actor).Get("/v1/transactions?cashbook=" + cashbookID.String() +
		"&duration=THIS_MONTH&search=100.00&position=40&limit=10&max_creation_time=" + maxTime.Format(time.RFC3339))

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_Errors(t *testing.T) {
	actor := newID()

	t.Run("anonymous", func(t *testing.T) {
		resp := newTestAPI(t, new(mockTransactionService), nil).Get("/v1/transactions")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("bad filter", func(t *testing.T) {
		mockSvc := new(mockTransactionService)
		resp := newTestAPI(t, mockSvc, &actor).Get("/v1/transactions?type=SIDEWAYS")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		mockSvc.AssertNotCalled(t, "List")
	})

	t.Run("limit out of range", func(t *testing.T) {
		resp := newTestAPI(t, new(mockTransactionService), &actor).Get("/v1/transactions?limit=500")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("storage", func(t *testing.T) {
		mockSvc := new(mockTransactionService)
		mockSvc.On("List", mock.Anything, actor, mock.Anything, mock.Anything).
			Return(nil, errors.New("database unavailable"))

		resp := newTestAPI(t, mockSvc, &actor).Get("/v1/transactions")
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.NotContains(t, resp.Body.String(), "database unavailable")
	})
}

func TestHTTP_Summary(t *testing.T) {
	actor, cashbookID := newID(), newID()

	mockSvc := new(mockTransactionService)
	mockSvc.On("Summary", mock.Anything, actor, mock.MatchedBy(func(q service.TransactionQuery) bool {
		return q.Filter.CashbookID != nil && *q.Filter.CashbookID == cashbookID
	})).Return(ledger.Totals{
		TotalIn:    decimal.RequireFromString("110"),
		TotalOut:   decimal.RequireFromString("40"),
		NetBalance: decimal.RequireFromString("70"),
	}, nil)
	mockSvc.On("Summary", mock.Anything, actor, mock.MatchedBy(func(q service.TransactionQuery) bool {
		return q.Filter.CashbookID == nil
	})).Return(ledger.Totals{}, apperr.Invalid("cashbook", "is required"))

	api := newTestAPI(t, mockSvc, &actor)

	resp := api.Get("/v1/summary?cashbook=" + cashbookID.String())
	require.Equal(t, http.StatusOK, resp.Code)
	var body Totals
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Totals{TotalIn: "110.00", TotalOut: "40.00", NetBalance: "70.00"}, body)

	resp = api.Get("/v1/summary")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "cashbook: is required")
}
