package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
	"github.com/carson-networks/cashbook-server/internal/storage/storagemock"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// inlineProcessor performs actions directly against the mock writer.
type inlineProcessor struct {
	writer *storage.Writer
	calls  int
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	return action.Perform(ctx, p.writer)
}

type fixture struct {
	svc   *Service
	mocks *storagemock.Mocks
	proc  *inlineProcessor
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mocks := storagemock.New()
	proc := &inlineProcessor{writer: mocks.Writer()}
	now := time.Date(2025, 6, 10, 14, 30, 5, 0, time.UTC)
	t.Cleanup(func() { mocks.AssertExpectations(t) })
	return &fixture{
		svc:   newService(mocks.Reader(), proc, func() time.Time { return now }),
		mocks: mocks,
		proc:  proc,
		now:   now,
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// grant makes actor hold role in a business owned by owner. An empty role means no membership.
func (f *fixture) grant(actor, owner, businessID uuid.UUID, role access.Role) {
	f.mocks.Businesses.On("OwnerOf", mock.Anything, businessID).Return(owner, nil).Maybe()
	if actor == owner {
		return
	}
	var stored *string
	if role != access.RoleNone {
		s := string(role)
		stored = &s
	}
	f.mocks.Members.On("RoleOf", mock.Anything, actor, businessID).Return(stored, nil).Maybe()
}

// reach makes businessIDs the actor's accessible set, owned first then joined.
func (f *fixture) reach(actor uuid.UUID, owned, joined []uuid.UUID) {
	f.mocks.Businesses.On("IDsOwnedBy", mock.Anything, actor).Return(owned, nil).Maybe()
	f.mocks.Members.On("BusinessIDsOf", mock.Anything, actor).Return(joined, nil).Maybe()
}

func (f *fixture) cashbook(businessID uuid.UUID) *cashbook.Cashbook {
	row := &cashbook.Cashbook{
		ID:         newID(),
		BusinessID: businessID,
		Name:       "Main",
		CreatedAt:  f.now.Add(-48 * time.Hour),
	}
	f.mocks.Cashbooks.On("FindByID", mock.Anything, row.ID).Return(row, nil).Maybe()
	return row
}

// -- Business tests --

func TestBusiness_GetHidesOthers(t *testing.T) {
	f := newFixture(t)
	owner, other := newID(), newID()
	row := &business.Business{ID: newID(), Name: "Shop", OwnerID: owner}
	f.mocks.Businesses.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	got, err := f.svc.Business.Get(context.Background(), owner, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop", got.Name)

	_, err = f.svc.Business.Get(context.Background(), other, row.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBusiness_CreateRequiresName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Business.Create(context.Background(), newID(), "   ")

	assert.True(t, apperr.IsValidation(err))
	assert.Zero(t, f.proc.calls)
}

func TestBusiness_DeleteByNonOwner(t *testing.T) {
	f := newFixture(t)
	row := &business.Business{ID: newID(), OwnerID: newID()}
	f.mocks.Businesses.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	err := f.svc.Business.Delete(context.Background(), newID(), row.ID)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, f.proc.calls)
}

// -- Cashbook tests --

func TestCashbook_CreateProvisionsBusiness(t *testing.T) {
	f := newFixture(t)
	actor := newID()
	provisioned := &business.Business{ID: newID(), Name: "asha's Business", OwnerID: actor}

	f.mocks.Businesses.On("LockOwner", mock.Anything, actor).Return(nil)
	f.mocks.Businesses.On("ListByOwner", mock.Anything, actor).Return(nil, nil)
	f.mocks.Users.On("FindByID", mock.Anything, actor).Return(&user.User{ID: actor, Username: "asha"}, nil)
	f.mocks.Businesses.On("Insert", mock.Anything, "asha's Business", actor).Return(provisioned, nil)
	f.mocks.Cashbooks.On("Insert", mock.Anything, provisioned.ID, "Main").
		Return(&cashbook.Cashbook{ID: newID(), BusinessID: provisioned.ID, Name: "Main"}, nil)

	got, err := f.svc.Cashbook.Create(context.Background(), actor, " Main ", uuid.NullUUID{})

	require.NoError(t, err)
	assert.Equal(t, provisioned.ID, got.BusinessID)
	assert.False(t, got.IsDefault)
}

func TestCashbook_CreateInForeignBusiness(t *testing.T) {
	f := newFixture(t)
	actor, businessID := newID(), newID()
	f.grant(actor, newID(), businessID, access.RoleViewer)

	_, err := f.svc.Cashbook.Create(context.Background(), actor, "Main", uuid.NullUUID{UUID: businessID, Valid: true})

	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	assert.Zero(t, f.proc.calls)
}

func TestCashbook_List(t *testing.T) {
	f := newFixture(t)
	actor, owned, joined := newID(), newID(), newID()
	f.reach(actor, []uuid.UUID{owned}, []uuid.UUID{joined})
	f.mocks.Cashbooks.On("ListByBusinessIDs", mock.Anything, []uuid.UUID{owned, joined}).Return([]*cashbook.Cashbook{
		{ID: newID(), BusinessID: owned, Name: "A", IsDefault: true},
		{ID: newID(), BusinessID: joined, Name: "B"},
	}, nil)

	got, err := f.svc.Cashbook.List(context.Background(), actor)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsDefault)
}

func TestCashbook_ListWithoutBusinesses(t *testing.T) {
	f := newFixture(t)
	actor := newID()
	f.reach(actor, nil, nil)

	got, err := f.svc.Cashbook.List(context.Background(), actor)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCashbook_UserRole(t *testing.T) {
	cases := []struct {
		role                         access.Role
		canCreate, canEdit, canDelete bool
	}{
		{access.RoleViewer, false, false, false},
		{access.RoleEditor, true, true, false},
		{access.RoleAdmin, true, true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			f := newFixture(t)
			actor, businessID := newID(), newID()
			book := f.cashbook(businessID)
			f.grant(actor, newID(), businessID, tc.role)

			info, err := f.svc.Cashbook.UserRole(context.Background(), actor, book.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.role, info.Role)
			assert.Equal(t, tc.canCreate, info.CanCreate)
			assert.Equal(t, tc.canEdit, info.CanEdit)
			assert.Equal(t, tc.canDelete, info.CanDelete)
		})
	}
}

func TestCashbook_UserRoleOwner(t *testing.T) {
	f := newFixture(t)
	owner, businessID := newID(), newID()
	book := f.cashbook(businessID)
	f.grant(owner, owner, businessID, access.RoleOwner)

	info, err := f.svc.Cashbook.UserRole(context.Background(), owner, book.ID)

	require.NoError(t, err)
	assert.Equal(t, access.RoleOwner, info.Role)
	assert.True(t, info.CanDelete)
}

func TestCashbook_StrangerSeesNotFound(t *testing.T) {
	f := newFixture(t)
	stranger, businessID := newID(), newID()
	book := f.cashbook(businessID)
	f.grant(stranger, newID(), businessID, access.RoleNone)

	_, err := f.svc.Cashbook.Get(context.Background(), stranger, book.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.svc.Cashbook.UserRole(context.Background(), stranger, book.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCashbook_SetDefault(t *testing.T) {
	f := newFixture(t)
	actor, businessID := newID(), newID()
	book := f.cashbook(businessID)
	sibling := &cashbook.Cashbook{ID: newID(), BusinessID: businessID, IsDefault: true}
	f.grant(actor, newID(), businessID, access.RoleEditor)

	f.mocks.Cashbooks.On("LockByBusiness", mock.Anything, businessID).Return([]*cashbook.Cashbook{book, sibling}, nil)
	f.mocks.Cashbooks.On("ClearDefault", mock.Anything, businessID).Return(nil)
	f.mocks.Cashbooks.On("MarkDefault", mock.Anything, book.ID).Return(nil)

	_, err := f.svc.Cashbook.SetDefault(context.Background(), actor, book.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, f.proc.calls)
}

func TestCashbook_SetDefaultViewer(t *testing.T) {
	f := newFixture(t)
	actor, businessID := newID(), newID()
	book := f.cashbook(businessID)
	f.grant(actor, newID(), businessID, access.RoleViewer)

	_, err := f.svc.Cashbook.SetDefault(context.Background(), actor, book.ID)

	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	assert.Zero(t, f.proc.calls)
}

func TestCashbook_DeleteNeedsDeleteCapability(t *testing.T) {
	f := newFixture(t)
	editor, admin, businessID := newID(), newID(), newID()
	owner := newID()
	book := f.cashbook(businessID)
	f.grant(editor, owner, businessID, access.RoleEditor)
	f.grant(admin, owner, businessID, access.RoleAdmin)
	f.mocks.Cashbooks.On("Delete", mock.Anything, book.ID).Return(nil)

	err := f.svc.Cashbook.Delete(context.Background(), editor, book.ID)
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)

	err = f.svc.Cashbook.Delete(context.Background(), admin, book.ID)
	assert.NoError(t, err)
}

// -- Member tests --

func TestMember_CreateDefaultsToViewer(t *testing.T) {
	f := newFixture(t)
	owner, invitee, businessID := newID(), newID(), newID()
	f.grant(owner, owner, businessID, access.RoleOwner)

	f.mocks.Users.On("FindByID", mock.Anything, invitee).Return(&user.User{ID: invitee}, nil)
	f.mocks.Members.On("Insert", mock.Anything, &member.MemberCreate{
		UserID:     invitee,
		BusinessID: businessID,
		Role:       "VIEWER",
	}).Return(&member.Member{ID: newID(), UserID: invitee, BusinessID: businessID, Role: "VIEWER"}, nil)

	got, err := f.svc.Member.Create(context.Background(), owner, MemberInput{UserID: invitee, BusinessID: businessID})

	require.NoError(t, err)
	assert.Equal(t, access.RoleViewer, got.Role)
}

func TestMember_CreateRejections(t *testing.T) {
	f := newFixture(t)
	owner, admin, businessID := newID(), newID(), newID()
	f.grant(owner, owner, businessID, access.RoleOwner)
	f.grant(admin, owner, businessID, access.RoleAdmin)

	_, err := f.svc.Member.Create(context.Background(), admin, MemberInput{UserID: newID(), BusinessID: businessID, Role: "EDITOR"})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied, "only the owner manages members")

	_, err = f.svc.Member.Create(context.Background(), owner, MemberInput{UserID: owner, BusinessID: businessID})
	assert.True(t, apperr.IsValidation(err), "the owner cannot join their own business")

	_, err = f.svc.Member.Create(context.Background(), owner, MemberInput{UserID: newID(), BusinessID: businessID, Role: "OWNER"})
	assert.True(t, apperr.IsValidation(err))

	assert.Zero(t, f.proc.calls)
}

func TestMember_CreateUnknownUser(t *testing.T) {
	f := newFixture(t)
	owner, invitee, businessID := newID(), newID(), newID()
	f.grant(owner, owner, businessID, access.RoleOwner)
	f.mocks.Users.On("FindByID", mock.Anything, invitee).Return(nil, apperr.ErrNotFound)

	_, err := f.svc.Member.Create(context.Background(), owner, MemberInput{UserID: invitee, BusinessID: businessID})

	assert.True(t, apperr.IsValidation(err))
}

func TestMember_ListOwnedOnly(t *testing.T) {
	f := newFixture(t)
	owner, businessID := newID(), newID()
	f.mocks.Businesses.On("IDsOwnedBy", mock.Anything, owner).Return([]uuid.UUID{businessID}, nil)
	f.mocks.Members.On("ListByBusinessIDs", mock.Anything, []uuid.UUID{businessID}).Return([]*member.Member{
		{ID: newID(), BusinessID: businessID, Role: "EDITOR", Username: "ravi"},
	}, nil)

	got, err := f.svc.Member.List(context.Background(), owner, uuid.NullUUID{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ravi", got[0].Username)
}

// -- Lookup tests --

func TestCategory_CreateDefaultsToBoth(t *testing.T) {
	f := newFixture(t)
	editor, businessID := newID(), newID()
	f.grant(editor, newID(), businessID, access.RoleEditor)
	f.mocks.Categories.On("Insert", mock.Anything, &category.CategoryCreate{
		BusinessID: businessID,
		Name:       "Fuel",
		Type:       CategoryTypeBoth,
	}).Return(&category.Category{ID: newID(), BusinessID: businessID, Name: "Fuel", Type: CategoryTypeBoth}, nil)

	got, err := f.svc.Category.Create(context.Background(), editor, CategoryInput{BusinessID: businessID, Name: "Fuel"})

	require.NoError(t, err)
	assert.Equal(t, CategoryTypeBoth, got.Type)
}

func TestCategory_InvalidType(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Category.Create(context.Background(), newID(), CategoryInput{BusinessID: newID(), Name: "Fuel", Type: "SIDEWAYS"})

	assert.True(t, apperr.IsValidation(err))
}

func TestLookups_ViewerCannotWrite(t *testing.T) {
	f := newFixture(t)
	viewer, businessID := newID(), newID()
	f.grant(viewer, newID(), businessID, access.RoleViewer)

	_, err := f.svc.Category.Create(context.Background(), viewer, CategoryInput{BusinessID: businessID, Name: "Fuel"})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)

	_, err = f.svc.Party.Create(context.Background(), viewer, PartyInput{BusinessID: businessID, Name: "Ravi Traders"})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)

	_, err = f.svc.PaymentMode.Create(context.Background(), viewer, businessID, "Cash")
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)

	assert.Zero(t, f.proc.calls)
}

func TestCategory_ListScopedToBusiness(t *testing.T) {
	f := newFixture(t)
	viewer, businessID := newID(), newID()
	f.grant(viewer, newID(), businessID, access.RoleViewer)
	f.mocks.Categories.On("ListByBusinessIDs", mock.Anything, []uuid.UUID{businessID}).
		Return([]*category.Category{{ID: newID(), BusinessID: businessID, Name: "Sales", Type: "BOTH"}}, nil)

	got, err := f.svc.Category.List(context.Background(), viewer, uuid.NullUUID{UUID: businessID, Valid: true})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
