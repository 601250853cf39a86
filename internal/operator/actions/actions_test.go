package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
	"github.com/carson-networks/cashbook-server/internal/storage/storagemock"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// -- SetDefaultCashbook tests --

func TestSetDefaultCashbook_Success(t *testing.T) {
	mocks := storagemock.New()
	businessID, a, b := newID(), newID(), newID()

	mocks.Cashbooks.On("FindByID", mock.Anything, b).Return(&cashbook.Cashbook{ID: b, BusinessID: businessID}, nil)
	lock := mocks.Cashbooks.On("LockByBusiness", mock.Anything, businessID).Return([]*cashbook.Cashbook{
		{ID: a, BusinessID: businessID, IsDefault: true},
		{ID: b, BusinessID: businessID},
	}, nil)
	clear := mocks.Cashbooks.On("ClearDefault", mock.Anything, businessID).Return(nil).NotBefore(lock)
	mocks.Cashbooks.On("MarkDefault", mock.Anything, b).Return(nil).NotBefore(clear)

	err := (&SetDefaultCashbook{CashbookID: b}).Perform(context.Background(), mocks.Writer())

	require.NoError(t, err)
	mocks.AssertExpectations(t)
}

func TestSetDefaultCashbook_VanishedBeforeLock(t *testing.T) {
	mocks := storagemock.New()
	businessID, b := newID(), newID()

	mocks.Cashbooks.On("FindByID", mock.Anything, b).Return(&cashbook.Cashbook{ID: b, BusinessID: businessID}, nil)
	mocks.Cashbooks.On("LockByBusiness", mock.Anything, businessID).Return([]*cashbook.Cashbook{}, nil)

	err := (&SetDefaultCashbook{CashbookID: b}).Perform(context.Background(), mocks.Writer())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mocks.Cashbooks.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	mocks.Cashbooks.AssertNotCalled(t, "MarkDefault", mock.Anything, mock.Anything)
}

func TestSetDefaultCashbook_MarkFails(t *testing.T) {
	mocks := storagemock.New()
	businessID, b := newID(), newID()

	mocks.Cashbooks.On("FindByID", mock.Anything, b).Return(&cashbook.Cashbook{ID: b, BusinessID: businessID}, nil)
	mocks.Cashbooks.On("LockByBusiness", mock.Anything, businessID).Return([]*cashbook.Cashbook{{ID: b}}, nil)
	mocks.Cashbooks.On("ClearDefault", mock.Anything, businessID).Return(nil)
	mocks.Cashbooks.On("MarkDefault", mock.Anything, b).Return(errors.New("connection reset"))

	err := (&SetDefaultCashbook{CashbookID: b}).Perform(context.Background(), mocks.Writer())

	assert.EqualError(t, err, "connection reset", "the error must reach the operator so it rolls back the clear")
}

// -- CreateCashbook tests --

func TestCreateCashbook_ExplicitBusiness(t *testing.T) {
	mocks := storagemock.New()
	actor, businessID := newID(), newID()
	created := &cashbook.Cashbook{ID: newID(), BusinessID: businessID, Name: "Shop"}
	mocks.Cashbooks.On("Insert", mock.Anything, businessID, "Shop").Return(created, nil)

	action := &CreateCashbook{ActorID: actor, BusinessID: uuid.NullUUID{UUID: businessID, Valid: true}, Name: "Shop"}
	require.NoError(t, action.Perform(context.Background(), mocks.Writer()))

	assert.Same(t, created, action.Result)
	assert.Nil(t, action.ProvisionedBusiness)
	mocks.Businesses.AssertNotCalled(t, "LockOwner", mock.Anything, mock.Anything)
	mocks.Businesses.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestCreateCashbook_UsesOldestOwnedBusiness(t *testing.T) {
	mocks := storagemock.New()
	actor, first, second := newID(), newID(), newID()
	mocks.Businesses.On("LockOwner", mock.Anything, actor).Return(nil)
	mocks.Businesses.On("ListByOwner", mock.Anything, actor).Return([]*business.Business{{ID: first}, {ID: second}}, nil)
	mocks.Cashbooks.On("Insert", mock.Anything, first, "Shop").Return(&cashbook.Cashbook{BusinessID: first}, nil)

	action := &CreateCashbook{ActorID: actor, Name: "Shop"}
	require.NoError(t, action.Perform(context.Background(), mocks.Writer()))

	assert.Equal(t, first, action.Result.BusinessID)
	mocks.AssertExpectations(t)
}

func TestCreateCashbook_ProvisionsBusiness(t *testing.T) {
	mocks := storagemock.New()
	actor, businessID := newID(), newID()
	var order []string
	mocks.Businesses.On("LockOwner", mock.Anything, actor).Return(nil).
		Run(func(mock.Arguments) { order = append(order, "lock") })
	mocks.Businesses.On("ListByOwner", mock.Anything, actor).Return(nil, nil).
		Run(func(mock.Arguments) { order = append(order, "list") })
	mocks.Users.On("FindByID", mock.Anything, actor).Return(&user.User{ID: actor, Username: "asha", FullName: "Asha Rao"}, nil)
	mocks.Businesses.On("Insert", mock.Anything, "Asha Rao's Business", actor).
		Return(&business.Business{ID: businessID, Name: "Asha Rao's Business", OwnerID: actor}, nil)
	mocks.Cashbooks.On("Insert", mock.Anything, businessID, "Daily").Return(&cashbook.Cashbook{BusinessID: businessID}, nil)

	action := &CreateCashbook{ActorID: actor, Name: "Daily"}
	require.NoError(t, action.Perform(context.Background(), mocks.Writer()))

	require.NotNil(t, action.ProvisionedBusiness)
	assert.Equal(t, businessID, action.ProvisionedBusiness.ID)
	assert.Equal(t, []string{"lock", "list"}, order)
	mocks.AssertExpectations(t)
}

func TestCreateCashbook_LockFailureStopsProvisioning(t *testing.T) {
	mocks := storagemock.New()
	actor := newID()
	mocks.Businesses.On("LockOwner", mock.Anything, actor).Return(apperr.ErrNotFound)

	err := (&CreateCashbook{ActorID: actor, Name: "Daily"}).Perform(context.Background(), mocks.Writer())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mocks.Businesses.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	mocks.Cashbooks.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestDefaultBusinessName_FallsBackToUsername(t *testing.T) {
	assert.Equal(t, "asha's Business", DefaultBusinessName(&user.User{Username: "asha"}))
}

// -- CreateMember tests --

func TestCreateMember_UnknownUser(t *testing.T) {
	mocks := storagemock.New()
	userID := newID()
	mocks.Users.On("FindByID", mock.Anything, userID).Return(nil, apperr.ErrNotFound)

	err := (&CreateMember{UserID: userID, BusinessID: newID(), Role: "EDITOR"}).Perform(context.Background(), mocks.Writer())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mocks.Members.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateMember_Duplicate(t *testing.T) {
	mocks := storagemock.New()
	userID, businessID := newID(), newID()
	mocks.Users.On("FindByID", mock.Anything, userID).Return(&user.User{ID: userID}, nil)
	mocks.Members.On("Insert", mock.Anything, &member.MemberCreate{UserID: userID, BusinessID: businessID, Role: "EDITOR"}).
		Return(nil, apperr.ErrConflict)

	err := (&CreateMember{UserID: userID, BusinessID: businessID, Role: "EDITOR"}).Perform(context.Background(), mocks.Writer())

	assert.ErrorIs(t, err, apperr.ErrConflict)
}

// -- SeedDefaults tests --

func TestSeedDefaults(t *testing.T) {
	mocks := storagemock.New()
	businessID := newID()
	mocks.Businesses.On("FindByID", mock.Anything, businessID).Return(&business.Business{ID: businessID}, nil)
	mocks.Categories.On("InsertMissing", mock.Anything, businessID, DefaultCategories).Return(3, nil)
	mocks.PaymentModes.On("InsertMissing", mock.Anything, businessID, DefaultPaymentModes).Return(0, nil)

	action := &SeedDefaults{BusinessID: businessID}
	require.NoError(t, action.Perform(context.Background(), mocks.Writer()))

	assert.Equal(t, 3, action.CategoriesAdded)
	assert.Equal(t, 0, action.PaymentModesAdded)
	assert.Len(t, DefaultCategories, 11)
	assert.Len(t, DefaultPaymentModes, 5)
}

func TestSeedDefaults_UnknownBusiness(t *testing.T) {
	mocks := storagemock.New()
	businessID := newID()
	mocks.Businesses.On("FindByID", mock.Anything, businessID).Return(nil, apperr.ErrNotFound)

	err := (&SeedDefaults{BusinessID: businessID}).Perform(context.Background(), mocks.Writer())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
