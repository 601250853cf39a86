package paymentmode

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// PaymentMode is how money moved: cash, bank transfer, card and so on.
type PaymentMode struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMode, error)
	ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*PaymentMode, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, businessID uuid.UUID, name string) (*PaymentMode, error)
	// InsertMissing adds the names the business does not have yet and returns how many were added.
	InsertMissing(ctx context.Context, businessID uuid.UUID, names []string) (int, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*PaymentMode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var columns = []any{"id", "business_id", "name"}
