package actions

import (
	"context"

	"github.com/carson-networks/cashbook-server/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single database transaction
// that is rolled back when it returns an error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
