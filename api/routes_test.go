package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	rest := &Rest{
		Logger:         logging.SetupLogging(),
		Storage:        pingFunc(func(context.Context) error { return nil }),
		Service:        service.NewService(storage.NewReader(nil), nil),
		Verifier:       auth.NewVerifier("secret"),
		AllowedOrigins: []string{"https://app.example"},
	}
	return rest.Router()
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := newRouter(t)

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/status", nil)).Code)

	metrics := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
}

func TestRouter_OperationsRequireToken(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/v1/businesses", "/v1/cashbooks", "/v1/transactions", "/v1/summary", "/v1/reports"} {
		resp := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, resp.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/cashbooks", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, serve(router, req).Code)
}

func TestRouter_OpenAPIListsEveryResource(t *testing.T) {
	resp := serve(newRouter(t), httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	for _, path := range []string{
		"/v1/businesses/{id}",
		"/v1/cashbooks/{id}/set-default",
		"/v1/cashbooks/{id}/user-role",
		"/v1/members/{id}",
		"/v1/categories/{id}",
		"/v1/parties/{id}",
		"/v1/payment-modes/{id}",
		"/v1/transactions/{id}",
		"/v1/summary",
		"/v1/reports/{id}/export_excel",
		"/v1/reports/{id}/export_pdf",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/cashbooks", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp := serve(newRouter(t), req)

	assert.Equal(t, "https://app.example", resp.Header().Get("Access-Control-Allow-Origin"))
}
