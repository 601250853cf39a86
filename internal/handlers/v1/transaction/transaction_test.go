package transaction

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/handlertest"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) List(ctx context.Context, actor uuid.UUID, query service.TransactionQuery, cursor *service.TransactionCursor) (*service.TransactionPage, error) {
	args := m.Called(ctx, actor, query, cursor)
	page, _ := args.Get(0).(*service.TransactionPage)
	return page, args.Error(1)
}

func (m *mockTransactionService) Summary(ctx context.Context, actor uuid.UUID, query service.TransactionQuery) (ledger.Totals, error) {
	args := m.Called(ctx, actor, query)
	return args.Get(0).(ledger.Totals), args.Error(1)
}

func (m *mockTransactionService) Get(ctx context.Context, actor, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, actor, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, actor uuid.UUID, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, actor, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, actor, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error) {
	args := m.Called(ctx, actor, id, patch)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

// newTestAPI registers every transaction handler and authenticates requests as actor.
func newTestAPI(t *testing.T, svc *mockTransactionService, actor *uuid.UUID) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, actor)
	NewListTransactionsHandler(svc).Register(api)
	NewSummaryHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewManageTransactionHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api
}

var newID = handlertest.NewID

func sampleTransaction() *service.Transaction {
	category := "Rent"
	mode := "Cash"
	return &service.Transaction{
		ID:              newID(),
		CashbookID:      newID(),
		Type:            ledger.Out,
		Amount:          decimal.RequireFromString("40"),
		Remark:          "office rent",
		CategoryID:      uuid.NullUUID{UUID: newID(), Valid: true},
		CategoryName:    &category,
		PaymentModeID:   uuid.NullUUID{UUID: newID(), Valid: true},
		PaymentModeName: &mode,
		CreatedBy:       newID(),
		CreatedByName:   "Asha Rao",
		CreatedAt:       time.Date(2025, 6, 10, 14, 30, 5, 123000, time.UTC),
		TransactionDate: civil.Date{Year: 2025, Month: 6, Day: 10},
		TransactionTime: "14:30:05",
	}
}
