package cashbook

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/handlertest"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type mockCashbookService struct {
	mock.Mock
}

func (m *mockCashbookService) List(ctx context.Context, actor uuid.UUID) ([]*service.Cashbook, error) {
	args := m.Called(ctx, actor)
	rows, _ := args.Get(0).([]*service.Cashbook)
	return rows, args.Error(1)
}

func (m *mockCashbookService) Get(ctx context.Context, actor, id uuid.UUID) (*service.Cashbook, error) {
	args := m.Called(ctx, actor, id)
	c, _ := args.Get(0).(*service.Cashbook)
	return c, args.Error(1)
}

func (m *mockCashbookService) Create(ctx context.Context, actor uuid.UUID, name string, businessID uuid.NullUUID) (*service.Cashbook, error) {
	args := m.Called(ctx, actor, name, businessID)
	c, _ := args.Get(0).(*service.Cashbook)
	return c, args.Error(1)
}

func (m *mockCashbookService) Update(ctx context.Context, actor, id uuid.UUID, name string) (*service.Cashbook, error) {
	args := m.Called(ctx, actor, id, name)
	c, _ := args.Get(0).(*service.Cashbook)
	return c, args.Error(1)
}

func (m *mockCashbookService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *mockCashbookService) SetDefault(ctx context.Context, actor, id uuid.UUID) (*service.Cashbook, error) {
	args := m.Called(ctx, actor, id)
	c, _ := args.Get(0).(*service.Cashbook)
	return c, args.Error(1)
}

func (m *mockCashbookService) UserRole(ctx context.Context, actor, id uuid.UUID) (*service.RoleInfo, error) {
	args := m.Called(ctx, actor, id)
	info, _ := args.Get(0).(*service.RoleInfo)
	return info, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockCashbookService, actor uuid.UUID) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, &actor)
	NewHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api
}

func sample(isDefault bool) *service.Cashbook {
	return &service.Cashbook{
		ID:         handlertest.NewID(),
		BusinessID: handlertest.NewID(),
		Name:       "Main",
		IsDefault:  isDefault,
		CreatedAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_CreateCashbook(t *testing.T) {
	actor := handlertest.NewID()
	book := sample(true)

	mockSvc := new(mockCashbookService)
	mockSvc.On("Create", mock.Anything, actor, "Main", uuid.NullUUID{}).Return(book, nil)
	mockSvc.On("Create", mock.Anything, actor, "Branch", uuid.NullUUID{UUID: book.BusinessID, Valid: true}).
		Return(nil, apperr.ErrPermissionDenied)

	api := newTestAPI(t, mockSvc, actor)

	resp := api.Post("/v1/cashbooks", CreateCashbookBody{Name: "Main"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var body Cashbook
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsDefault)
	assert.Equal(t, book.BusinessID.String(), body.BusinessID)

	resp = api.Post("/v1/cashbooks", CreateCashbookBody{Name: "Branch", BusinessID: book.BusinessID.String()})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = api.Post("/v1/cashbooks", CreateCashbookBody{Name: "Branch", BusinessID: "first"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListCashbooks(t *testing.T) {
	actor := handlertest.NewID()

	mockSvc := new(mockCashbookService)
	mockSvc.On("List", mock.Anything, actor).Return(nil, nil)

	resp := newTestAPI(t, mockSvc, actor).Get("/v1/cashbooks")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"cashbooks":[]}`, resp.Body.String())
}

func TestHTTP_SetDefault(t *testing.T) {
	actor := handlertest.NewID()
	book := sample(true)
	viewerBook := handlertest.NewID()

	mockSvc := new(mockCashbookService)
	mockSvc.On("SetDefault", mock.Anything, actor, book.ID).Return(book, nil)
	mockSvc.On("SetDefault", mock.Anything, actor, viewerBook).Return(nil, apperr.ErrPermissionDenied)

	api := newTestAPI(t, mockSvc, actor)

	resp := api.Patch("/v1/cashbooks/" + book.ID.String() + "/set-default")
	require.Equal(t, http.StatusOK, resp.Code)
	var body Cashbook
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsDefault)

	assert.Equal(t, http.StatusForbidden, api.Patch("/v1/cashbooks/"+viewerBook.String()+"/set-default").Code)
}

func TestHTTP_UserRole(t *testing.T) {
	actor, id := handlertest.NewID(), handlertest.NewID()

	mockSvc := new(mockCashbookService)
	mockSvc.On("UserRole", mock.Anything, actor, id).Return(&service.RoleInfo{
		Role:      access.RoleEditor,
		CanCreate: true,
		CanEdit:   true,
	}, nil)

	resp := newTestAPI(t, mockSvc, actor).Get("/v1/cashbooks/" + id.String() + "/user-role")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"role":"EDITOR","can_create":true,"can_edit":true,"can_delete":false}`, resp.Body.String())
}

func TestHTTP_CashbookItemErrors(t *testing.T) {
	actor, id := handlertest.NewID(), handlertest.NewID()

	mockSvc := new(mockCashbookService)
	mockSvc.On("Get", mock.Anything, actor, id).Return(nil, apperr.ErrNotFound)
	mockSvc.On("Update", mock.Anything, actor, id, "Petty cash").Return(nil, apperr.ErrPermissionDenied)
	mockSvc.On("Delete", mock.Anything, actor, id).Return(apperr.ErrPermissionDenied)

	api := newTestAPI(t, mockSvc, actor)

	assert.Equal(t, http.StatusNotFound, api.Get("/v1/cashbooks/"+id.String()).Code)
	assert.Equal(t, http.StatusForbidden, api.Patch("/v1/cashbooks/"+id.String(), UpdateCashbookBody{Name: "Petty cash"}).Code)
	assert.Equal(t, http.StatusForbidden, api.Delete("/v1/cashbooks/"+id.String()).Code)
}
