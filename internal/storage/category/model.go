package category

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Type is IN, OUT or BOTH.
type Category struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
	Type       string    `db:"type"`
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	BusinessID uuid.UUID
	Name       string
	Type       string
}

// CategoryUpdate changes only the fields that are set.
type CategoryUpdate struct {
	Name omit.Val[string]
	Type omit.Val[string]
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Category, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	// InsertMissing adds the seeds whose names the business does not have yet.
	InsertMissing(ctx context.Context, businessID uuid.UUID, seeds []CategoryCreate) (int, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var columns = []any{"id", "business_id", "name", "type"}
