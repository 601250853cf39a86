package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is an account managed by the identity provider. This service only reads it.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

// DisplayName is the full name, or the username when no full name is recorded.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
