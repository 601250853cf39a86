package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/export"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

// ReportService builds read-only cashbook reports. Reports take no filters.
type ReportService struct {
	*deps
}

// ReportSummary is one line of the reports list.
type ReportSummary struct {
	CashbookID   uuid.UUID
	Name         string
	BusinessName string
	Totals       ledger.Totals
	// LastUpdated is the newest transaction's creation time, or the cashbook's.
	LastUpdated time.Time
}

// Report is a cashbook's full ledger, newest first.
type Report struct {
	Cashbook     *Cashbook
	BusinessName string
	Ledger       ledger.Ledger[Transaction]
}

// Export is a rendered report file.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	documentContentType    = "application/pdf"
)

func (s *ReportService) List(ctx context.Context, actor uuid.UUID) ([]*ReportSummary, error) {
	businessIDs, err := s.resolver.AccessibleBusinessIDs(ctx, actor)
	if err != nil || len(businessIDs) == 0 {
		return nil, err
	}
	books, err := s.reader.Cashbooks.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	names, err := s.businessNames(ctx, businessIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ReportSummary, 0, len(books))
	for _, book := range books {
		rows, err := s.ledgerRows(ctx, book.ID)
		if err != nil {
			return nil, err
		}
		latest, err := s.reader.Transactions.LatestCreatedAt(ctx, book.ID)
		if err != nil {
			return nil, err
		}
		lastUpdated := book.CreatedAt
		if latest != nil {
			lastUpdated = *latest
		}
		summaries = append(summaries, &ReportSummary{
			CashbookID:   book.ID,
			Name:         book.Name,
			BusinessName: names[book.BusinessID],
			Totals:       ledger.Summarize(rows),
			LastUpdated:  lastUpdated,
		})
	}
	return summaries, nil
}

func (s *ReportService) Get(ctx context.Context, actor, cashbookID uuid.UUID) (*Report, error) {
	book, _, err := s.authorizeCashbook(ctx, actor, cashbookID, access.CapabilityRead)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, book)
}

func (s *ReportService) ExportSpreadsheet(ctx context.Context, actor, cashbookID uuid.UUID) (*Export, error) {
	report, err := s.exportable(ctx, actor, cashbookID)
	if err != nil {
		return nil, err
	}
	data, err := export.Spreadsheet(report)
	if err != nil {
		return nil, err
	}
	return &Export{
		Filename:    report.CashbookName + "_report.xlsx",
		ContentType: spreadsheetContentType,
		Data:        data,
	}, nil
}

func (s *ReportService) ExportDocument(ctx context.Context, actor, cashbookID uuid.UUID) (*Export, error) {
	report, err := s.exportable(ctx, actor, cashbookID)
	if err != nil {
		return nil, err
	}
	data, err := export.Document(report)
	if err != nil {
		return nil, err
	}
	return &Export{
		Filename:    report.CashbookName + "_report.pdf",
		ContentType: documentContentType,
		Data:        data,
	}, nil
}

// exportable converts the report into chronological export rows.
func (s *ReportService) exportable(ctx context.Context, actor, cashbookID uuid.UUID) (*export.Report, error) {
	report, err := s.Get(ctx, actor, cashbookID)
	if err != nil {
		return nil, err
	}

	rows := make([]export.Row, len(report.Ledger.Rows))
	last := len(rows) - 1
	for i, row := range report.Ledger.Rows {
		tx := row.Item
		rows[last-i] = export.Row{
			Date:        tx.TransactionDate,
			Time:        tx.TransactionTime,
			Type:        tx.Type,
			Party:       deref(tx.PartyName),
			Category:    deref(tx.CategoryName),
			PaymentMode: deref(tx.PaymentModeName),
			Remark:      tx.Remark,
			Amount:      tx.Amount,
			Balance:     row.RunningBalance,
		}
	}
	return &export.Report{
		CashbookName: report.Cashbook.Name,
		BusinessName: report.BusinessName,
		GeneratedAt:  s.now(),
		Totals:       report.Ledger.Totals,
		Rows:         rows,
	}, nil
}

func (s *ReportService) build(ctx context.Context, book *cashbook.Cashbook) (*Report, error) {
	rows, err := s.ledgerRows(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	owner, err := s.reader.Businesses.FindByID(ctx, book.BusinessID)
	if err != nil {
		return nil, err
	}
	return &Report{
		Cashbook:     cashbookFromStorage(book),
		BusinessName: owner.Name,
		Ledger:       ledger.Annotate(rows),
	}, nil
}

// ledgerRows loads every transaction of one cashbook in ascending ledger order.
func (s *ReportService) ledgerRows(ctx context.Context, cashbookID uuid.UUID) ([]Transaction, error) {
	rows, err := s.reader.Transactions.List(ctx, &transaction.ListQuery{CashbookIDs: []uuid.UUID{cashbookID}})
	if err != nil {
		return nil, err
	}
	return convertAll(rows, transactionFromStorage), nil
}

func (s *ReportService) businessNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	rows, err := s.reader.Businesses.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
