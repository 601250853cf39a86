package service

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	CashbookID      uuid.UUID
	Type            ledger.Direction
	Amount          decimal.Decimal
	Remark          string
	CategoryID      uuid.NullUUID
	CategoryName    *string
	PartyID         uuid.NullUUID
	PartyName       *string
	PaymentModeID   uuid.NullUUID
	PaymentModeName *string
	CreatedBy       uuid.UUID
	CreatedByName   string
	CreatedAt       time.Time
	TransactionDate civil.Date
	TransactionTime string
}

func (t Transaction) Direction() ledger.Direction {
	return t.Type
}

func (t Transaction) Value() decimal.Decimal {
	return t.Amount
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		CashbookID:      row.CashbookID,
		Type:            ledger.Direction(row.Type),
		Amount:          row.Amount,
		Remark:          row.Remark,
		CategoryID:      row.CategoryID,
		CategoryName:    row.CategoryName,
		PartyID:         row.PartyID,
		PartyName:       row.PartyName,
		PaymentModeID:   row.PaymentModeID,
		PaymentModeName: row.PaymentModeName,
		CreatedBy:       row.CreatedBy,
		CreatedByName:   row.CreatedByName,
		CreatedAt:       row.CreatedAt,
		TransactionDate: civil.DateOf(row.TransactionDate),
		TransactionTime: row.TransactionTime,
	}
}

// TransactionInput records a transaction. Category and payment mode are optional here so
// that a missing one is reported as a validation error rather than a decoding failure.
type TransactionInput struct {
	CashbookID    uuid.UUID
	Type          string
	Amount        decimal.Decimal
	Remark        string
	CategoryID    uuid.NullUUID
	PartyID       uuid.NullUUID
	PaymentModeID uuid.NullUUID
}

// TransactionPatch changes only the fields that are set. A null PartyID clears the party.
type TransactionPatch struct {
	Type          omit.Val[string]
	Amount        omit.Val[decimal.Decimal]
	Remark        omit.Val[string]
	CategoryID    omit.Val[uuid.UUID]
	PartyID       omitnull.Val[uuid.UUID]
	PaymentModeID omit.Val[uuid.UUID]
}

// TransactionQuery narrows a listing. MemberID is kept raw: an unparsable or unknown member
// yields an empty result instead of an error.
type TransactionQuery struct {
	Filter   ledger.Filter
	MemberID string
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
// A zero Limit means the default page size; a zero MaxCreationTime starts a new snapshot.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionPage is one newest-first slice of the annotated ledger. Totals cover the whole
// filtered set, not just the page.
type TransactionPage struct {
	Rows   []ledger.Row[Transaction]
	Totals ledger.Totals
	Next   *TransactionCursor
}
