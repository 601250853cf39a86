package report

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ReportSummary is one line of the reports list.
type ReportSummary struct {
	CashbookID   string `json:"id" doc:"Cashbook UUID"`
	Name         string `json:"name" doc:"Cashbook name"`
	BusinessName string `json:"business_name" doc:"Owning business name"`
	transaction.Totals
	LastUpdated string `json:"last_updated" doc:"RFC3339 creation time of the newest transaction, or of the cashbook"`
}

// Report is a cashbook's full ledger, newest first.
type Report struct {
	CashbookID   string                    `json:"id" doc:"Cashbook UUID"`
	Name         string                    `json:"name" doc:"Cashbook name"`
	BusinessName string                    `json:"business_name" doc:"Owning business name"`
	Totals       transaction.Totals        `json:"totals"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Every transaction with its running balance, newest first"`
}

type ReportIDInput struct {
	ID string `path:"id" doc:"Cashbook UUID"`
}

type ListReportsOutput struct {
	Body struct {
		Reports []ReportSummary `json:"reports"`
	}
}

type ReportOutput struct {
	Body Report
}

// ExportOutput streams a rendered report file.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type reportService interface {
	List(ctx context.Context, actor uuid.UUID) ([]*service.ReportSummary, error)
	Get(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Report, error)
	ExportSpreadsheet(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Export, error)
	ExportDocument(ctx context.Context, actor, cashbookID uuid.UUID) (*service.Export, error)
}

// Handler serves the read-only /v1/reports endpoints.
type Handler struct {
	ReportService reportService
}

func NewHandler(svc reportService) *Handler {
	return &Handler{ReportService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Reports"}
	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/v1/reports",
		Summary:     "List cashbook reports",
		Description: "Returns the totals and last activity of every accessible cashbook.",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/{id}",
		Summary:     "Get cashbook report",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "export-report-excel",
		Method:      http.MethodGet,
		Path:        "/v1/reports/{id}/export_excel",
		Summary:     "Export report as a spreadsheet",
		Tags:        tags,
		Responses: map[string]*huma.Response{
			"200": {Content: map[string]*huma.MediaType{
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
			}},
		},
	}, h.exportSpreadsheet)
	huma.Register(api, huma.Operation{
		OperationID: "export-report-pdf",
		Method:      http.MethodGet,
		Path:        "/v1/reports/{id}/export_pdf",
		Summary:     "Export report as a PDF",
		Tags:        tags,
		Responses: map[string]*huma.Response{
			"200": {Content: map[string]*huma.MediaType{"application/pdf": {}}},
		},
	}, h.exportDocument)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListReportsOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := h.ReportService.List(ctx, actor)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list reports")
	}

	out := &ListReportsOutput{}
	out.Body.Reports = make([]ReportSummary, len(summaries))
	for i, s := range summaries {
		out.Body.Reports[i] = ReportSummary{
			CashbookID:   s.CashbookID.String(),
			Name:         s.Name,
			BusinessName: s.BusinessName,
			Totals:       transaction.NewTotals(s.Totals),
			LastUpdated:  httperr.Timestamp(s.LastUpdated),
		}
	}
	return out, nil
}

func (h *Handler) get(ctx context.Context, input *ReportIDInput) (*ReportOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var report *service.Report
	err = logging.Timed(ctx, "reportMs", func() error {
		report, err = h.ReportService.Get(ctx, actor, id)
		return err
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to build report")
	}

	return &ReportOutput{Body: Report{
		CashbookID:   report.Cashbook.ID.String(),
		Name:         report.Cashbook.Name,
		BusinessName: report.BusinessName,
		Totals:       transaction.NewTotals(report.Ledger.Totals),
		Transactions: transaction.NewRows(report.Ledger.Rows),
	}}, nil
}

func (h *Handler) exportSpreadsheet(ctx context.Context, input *ReportIDInput) (*ExportOutput, error) {
	return h.export(ctx, input, h.ReportService.ExportSpreadsheet)
}

func (h *Handler) exportDocument(ctx context.Context, input *ReportIDInput) (*ExportOutput, error) {
	return h.export(ctx, input, h.ReportService.ExportDocument)
}

func (h *Handler) export(
	ctx context.Context,
	input *ReportIDInput,
	render func(context.Context, uuid.UUID, uuid.UUID) (*service.Export, error),
) (*ExportOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var file *service.Export
	err = logging.Timed(ctx, "exportMs", func() error {
		file, err = render(ctx, actor, id)
		return err
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to export report")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("exportBytes", len(file.Data))
	}
	return &ExportOutput{
		ContentType:        file.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", file.Filename),
		Body:               file.Data,
	}, nil
}
