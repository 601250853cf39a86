package cashbook

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Cashbook represents a cashbook record.
type Cashbook struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
	IsDefault  bool      `db:"is_default"`
	CreatedAt  time.Time `db:"created_at"`
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cashbook, error)
	ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Cashbook, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, businessID uuid.UUID, name string) (*Cashbook, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*Cashbook, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// LockByBusiness takes row locks on every cashbook of the business.
	LockByBusiness(ctx context.Context, businessID uuid.UUID) ([]*Cashbook, error)
	ClearDefault(ctx context.Context, businessID uuid.UUID) error
	MarkDefault(ctx context.Context, id uuid.UUID) error
}

var columns = []any{"id", "business_id", "name", "is_default", "created_at"}
