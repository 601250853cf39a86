package business

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Business represents a business record.
type Business struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	OwnerID   uuid.UUID `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

// IReader defines the read operations on businesses.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Business, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*Business, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Business, error)
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	IDsOwnedBy(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error)
}

// IWriter adds the mutations, available only inside a write transaction.
type IWriter interface {
	IReader
	LockOwner(ctx context.Context, owner uuid.UUID) error
	Insert(ctx context.Context, name string, owner uuid.UUID) (*Business, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*Business, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var columns = []any{"id", "name", "owner_id", "created_at"}
