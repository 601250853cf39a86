package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/handlertest"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) List(ctx context.Context, actor uuid.UUID) ([]*service.ReportSummary, error) {
	args := m.Called(ctx, actor)
	rows, _ := args.Get(0).([]*service.ReportSummary)
	return rows, args.Error(1)
}

func (m *mockReportService) Get(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Report, error) {
	args := m.Called(ctx, actor, cashbookID)
	report, _ := args.Get(0).(*service.Report)
	return report, args.Error(1)
}

func (m *mockReportService) ExportSpreadsheet(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Export, error) {
	args := m.Called(ctx, actor, cashbookID)
	file, _ := args.Get(0).(*service.Export)
	return file, args.Error(1)
}

func (m *mockReportService) ExportDocument(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Export, error) {
	args := m.Called(ctx, actor, cashbookID)
	file, _ := args.Get(0).(*service.Export)
	return file, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockReportService, actor uuid.UUID) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, &actor)
	NewHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestHTTP_ListReports(t *testing.T) {
	actor, cashbookID := handlertest.NewID(), handlertest.NewID()

	mockSvc := new(mockReportService)
	mockSvc.On("List", mock.Anything, actor).Return([]*service.ReportSummary{{
		CashbookID:   cashbookID,
		Name:         "Main",
		BusinessName: "Rao Traders",
		Totals:       ledger.Totals{TotalIn: money("110"), TotalOut: money("40"), NetBalance: money("70")},
		LastUpdated:  time.Date(2025, 6, 10, 14, 30, 5, 0, time.UTC),
	}}, nil)

	resp := newTestAPI(t, mockSvc, actor).Get("/v1/reports")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"reports":[{
		"id":"`+cashbookID.String()+`",
		"name":"Main",
		"business_name":"Rao Traders",
		"total_in":"110.00",
		"total_out":"40.00",
		"net_balance":"70.00",
		"last_updated":"2025-06-10T14:30:05Z"
	}]}`, resp.Body.String())
}

func TestHTTP_GetReport(t *testing.T) {
	actor := handlertest.NewID()
	book := &service.Cashbook{ID: handlertest.NewID(), Name: "Main"}
	tx := service.Transaction{
		ID:              handlertest.NewID(),
		CashbookID:      book.ID,
		Type:            ledger.In,
		Amount:          money("100"),
		TransactionDate: civil.Date{Year: 2025, Month: 6, Day: 1},
		TransactionTime: "09:00:00",
	}

	mockSvc := new(mockReportService)
	mockSvc.On("Get", mock.Anything, actor, book.ID).Return(&service.Report{
		Cashbook:     book,
		BusinessName: "Rao Traders",
		Ledger: ledger.Ledger[service.Transaction]{
			Rows:   []ledger.Row[service.Transaction]{{Item: tx, RunningBalance: money("100")}},
			Totals: ledger.Totals{TotalIn: money("100"), TotalOut: decimal.Zero, NetBalance: money("100")},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc, actor).Get("/v1/reports/" + book.ID.String())

	require.Equal(t, http.StatusOK, resp.Code)
	var body Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Rao Traders", body.BusinessName)
	assert.Equal(t, "100.00", body.Totals.NetBalance)
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "100.00", *body.Transactions[0].RunningBalance)
}

func TestHTTP_ExportReport(t *testing.T) {
	actor, cashbookID := handlertest.NewID(), handlertest.NewID()

	mockSvc := new(mockReportService)
	mockSvc.On("ExportSpreadsheet", mock.Anything, actor, cashbookID).Return(&service.Export{
		Filename:    "Main_report.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK\x03\x04"),
	}, nil)
	mockSvc.On("ExportDocument", mock.Anything, actor, cashbookID).Return(&service.Export{
		Filename:    "Main_report.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3"),
	}, nil)

	api := newTestAPI(t, mockSvc, actor)

	resp := api.Get("/v1/reports/" + cashbookID.String() + "/export_excel")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Main_report.xlsx"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("PK\x03\x04"), resp.Body.Bytes())

	resp = api.Get("/v1/reports/" + cashbookID.String() + "/export_pdf")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3", resp.Body.String())
}

func TestHTTP_ReportInaccessible(t *testing.T) {
	actor, cashbookID := handlertest.NewID(), handlertest.NewID()

	mockSvc := new(mockReportService)
	mockSvc.On("Get", mock.Anything, actor, cashbookID).Return(nil, apperr.ErrNotFound)
	mockSvc.On("ExportDocument", mock.Anything, actor, cashbookID).Return(nil, apperr.ErrNotFound)

	api := newTestAPI(t, mockSvc, actor)

	assert.Equal(t, http.StatusNotFound, api.Get("/v1/reports/"+cashbookID.String()).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/v1/reports/"+cashbookID.String()+"/export_pdf").Code)
}
