package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whoAmIOutput struct {
	Body struct {
		UserID string `json:"userID"`
	}
}

func newTestAPI(t *testing.T, v *Verifier) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, v))
	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/v1/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		userID, ok := UserFromContext(ctx)
		if !ok {
			return nil, huma.Error500InternalServerError("no user in context")
		}
		out := &whoAmIOutput{}
		out.Body.UserID = userID.String()
		return out, nil
	})
	return api
}

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("secret")
	userID := uuid.Must(uuid.NewV4())

	token, err := v.Sign(userID, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifier_SubjectFallback(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, err := NewVerifier("secret").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifier_Rejects(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	wrongSecret, _ := NewVerifier("other").Sign(userID, time.Hour)
	expired, _ := NewVerifier("secret").Sign(userID, -time.Minute)
	notUUID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte("secret"))

	v := NewVerifier("secret")
	for name, token := range map[string]string{
		"wrong secret": wrongSecret,
		"expired":      expired,
		"not a uuid":   notUUID,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestHTTP_Middleware(t *testing.T) {
	v := NewVerifier("secret")
	api := newTestAPI(t, v)
	userID := uuid.Must(uuid.NewV4())
	token, err := v.Sign(userID, time.Hour)
	require.NoError(t, err)

	resp := api.Get("/v1/whoami", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())

	resp = api.Get("/v1/whoami")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Get("/v1/whoami", "Authorization: Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUserFromContext_Absent(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}
