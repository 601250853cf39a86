package member

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Member grants a non-owner user a role in a business. Username and FullName come from
// the users table.
type Member struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	BusinessID uuid.UUID `db:"business_id"`
	Role       string    `db:"role"`
	JoinedAt   time.Time `db:"joined_at"`
	Username   string    `db:"username"`
	FullName   string    `db:"full_name"`
}

// MemberCreate is the input for adding a member.
type MemberCreate struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       string
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Member, error)
	RoleOf(ctx context.Context, userID, businessID uuid.UUID) (*string, error)
	BusinessIDsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *MemberCreate) (*Member, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
