package party

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
)

// Party is a counterparty (customer, supplier) of a business.
type Party struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
	Phone      *string   `db:"phone"`
}

type PartyCreate struct {
	BusinessID uuid.UUID
	Name       string
	Phone      *string
}

// PartyUpdate changes only the fields that are set. A null Phone clears it.
type PartyUpdate struct {
	Name  omit.Val[string]
	Phone omitnull.Val[string]
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)
	ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Party, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *PartyCreate) (*Party, error)
	Update(ctx context.Context, id uuid.UUID, update *PartyUpdate) (*Party, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var columns = []any{"id", "business_id", "name", "phone"}
