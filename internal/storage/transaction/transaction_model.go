package transaction

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

// Transaction represents a transaction record joined with the names of what it references.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	Seq             int64           `db:"seq"`
	CashbookID      uuid.UUID       `db:"cashbook_id"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Remark          string          `db:"remark"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	PartyID         uuid.NullUUID   `db:"party_id"`
	PaymentModeID   uuid.NullUUID   `db:"payment_mode_id"`
	CreatedBy       uuid.UUID       `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
	TransactionDate time.Time       `db:"transaction_date"`
	TransactionTime string          `db:"transaction_time"`
	CategoryName    *string         `db:"category_name"`
	PartyName       *string         `db:"party_name"`
	PaymentModeName *string         `db:"payment_mode_name"`
	CreatedByName   string          `db:"created_by_name"`
}

// TransactionCreate is the input for recording a new transaction.
type TransactionCreate struct {
	CashbookID      uuid.UUID
	Type            string
	Amount          decimal.Decimal
	Remark          string
	CategoryID      uuid.UUID
	PartyID         uuid.NullUUID
	PaymentModeID   uuid.UUID
	CreatedBy       uuid.UUID
	TransactionDate civil.Date
	TransactionTime civil.Time
}

// TransactionUpdate changes only the fields that are set. Date and time are immutable.
type TransactionUpdate struct {
	Type          omit.Val[string]
	Amount        omit.Val[decimal.Decimal]
	Remark        omit.Val[string]
	CategoryID    omit.Val[uuid.UUID]
	PartyID       omitnull.Val[uuid.UUID]
	PaymentModeID omit.Val[uuid.UUID]
}

// ListQuery restricts a listing to the cashbooks in scope and the predicates of Filter,
// with Window already resolved against the current date. MaxCreatedAt pins a paging
// snapshot: rows recorded after it are left out.
type ListQuery struct {
	CashbookIDs  []uuid.UUID
	Filter       ledger.Filter
	Window       ledger.Window
	MaxCreatedAt *time.Time
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	// List returns matches ascending by (transaction_date, created_at, seq).
	List(ctx context.Context, query *ListQuery) ([]*Transaction, error)
	LatestCreatedAt(ctx context.Context, cashbookID uuid.UUID) (*time.Time, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
