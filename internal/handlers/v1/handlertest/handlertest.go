// Package handlertest builds humatest APIs for handler tests.
package handlertest

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/auth"
)

// NewAPI returns a test API whose requests are authenticated as actor. A nil actor leaves
// requests anonymous. Middleware must be in place before operations are registered.
func NewAPI(t *testing.T, actor *uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if actor != nil {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), *actor)))
		})
	}
	return api
}

func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
