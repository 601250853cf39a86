package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

func strPtr(s string) *string {
	return &s
}

func TestParseUpdateTransactionBody(t *testing.T) {
	categoryID := newID()

	patch, err := parseUpdateTransactionBody(&UpdateTransactionBody{
		Amount:     strPtr("12.50"),
		CategoryID: strPtr(categoryID.String()),
		PartyID:    strPtr(""),
	})
	require.NoError(t, err)

	assert.True(t, patch.Type.IsUnset())
	assert.True(t, patch.Remark.IsUnset())
	assert.Equal(t, "12.5", patch.Amount.GetOrZero().String())
	assert.Equal(t, categoryID, patch.CategoryID.GetOrZero())
	assert.True(t, patch.PartyID.IsNull(), "an empty party clears it")
	assert.True(t, patch.PaymentModeID.IsUnset())

	partyID := newID()
	patch, err = parseUpdateTransactionBody(&UpdateTransactionBody{PartyID: strPtr(partyID.String())})
	require.NoError(t, err)
	assert.Equal(t, partyID, patch.PartyID.GetOrZero())

	_, err = parseUpdateTransactionBody(&UpdateTransactionBody{PaymentModeID: strPtr("cash")})
	assert.Error(t, err)
}

func TestHTTP_GetTransaction(t *testing.T) {
	actor := newID()
	tx := sampleTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, actor, tx.ID).Return(tx, nil)
	mockSvc.On("Get", mock.Anything, actor, mock.Anything).Return(nil, apperr.ErrNotFound)

	api := newTestAPI(t, mockSvc, &actor)

	resp := api.Get("/v1/transactions/" + tx.ID.String())
	require.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "office rent", body.Remark)
	assert.Equal(t, "2025-06-10T14:30:05Z", body.CreatedAt)

	assert.Equal(t, http.StatusNotFound, api.Get("/v1/transactions/"+newID().String()).Code)
	assert.Equal(t, http.StatusBadRequest, api.Get("/v1/transactions/not-a-uuid").Code)
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	actor := newID()
	tx := sampleTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, actor, tx.ID, mock.MatchedBy(func(p service.TransactionPatch) bool {
		return p.Remark.GetOrZero() == "office rent" && p.Amount.IsUnset()
	})).Return(tx, nil)

	resp := newTestAPI(t, mockSvc, &actor).Patch("/v1/transactions/"+tx.ID.String(), map[string]any{
		"remark": "office rent",
	})

	require.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	actor := newID()
	allowed, denied := newID(), newID()

	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, actor, allowed).Return(nil)
	mockSvc.On("Delete", mock.Anything, actor, denied).Return(apperr.ErrPermissionDenied)

	api := newTestAPI(t, mockSvc, &actor)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/transactions/"+allowed.String()).Code)
	assert.Equal(t, http.StatusForbidden, api.Delete("/v1/transactions/"+denied.String()).Code)
}
