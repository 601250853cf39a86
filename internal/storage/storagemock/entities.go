package storagemock

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
	"github.com/carson-networks/cashbook-server/internal/storage/party"
	"github.com/carson-networks/cashbook-server/internal/storage/paymentmode"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

var (
	_ user.IReader        = (*Users)(nil)
	_ business.IWriter    = (*Businesses)(nil)
	_ member.IWriter      = (*Members)(nil)
	_ cashbook.IWriter    = (*Cashbooks)(nil)
	_ category.IWriter    = (*Categories)(nil)
	_ party.IWriter       = (*Parties)(nil)
	_ paymentmode.IWriter = (*PaymentModes)(nil)
	_ transaction.IWriter = (*Transactions)(nil)
)

type Users struct {
	mock.Mock
}

func (m *Users) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	return value[*user.User](args, 0), args.Error(1)
}

type Businesses struct {
	mock.Mock
}

func (m *Businesses) FindByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	args := m.Called(ctx, id)
	return value[*business.Business](args, 0), args.Error(1)
}

func (m *Businesses) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*business.Business, error) {
	args := m.Called(ctx, owner)
	return value[[]*business.Business](args, 0), args.Error(1)
}

func (m *Businesses) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*business.Business, error) {
	args := m.Called(ctx, ids)
	return value[[]*business.Business](args, 0), args.Error(1)
}

func (m *Businesses) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return value[uuid.UUID](args, 0), args.Error(1)
}

func (m *Businesses) IDsOwnedBy(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, owner)
	return value[[]uuid.UUID](args, 0), args.Error(1)
}

func (m *Businesses) LockOwner(ctx context.Context, owner uuid.UUID) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *Businesses) Insert(ctx context.Context, name string, owner uuid.UUID) (*business.Business, error) {
	args := m.Called(ctx, name, owner)
	return value[*business.Business](args, 0), args.Error(1)
}

func (m *Businesses) Update(ctx context.Context, id uuid.UUID, name string) (*business.Business, error) {
	args := m.Called(ctx, id, name)
	return value[*business.Business](args, 0), args.Error(1)
}

func (m *Businesses) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type Members struct {
	mock.Mock
}

func (m *Members) FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	return value[*member.Member](args, 0), args.Error(1)
}

func (m *Members) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*member.Member, error) {
	args := m.Called(ctx, businessIDs)
	return value[[]*member.Member](args, 0), args.Error(1)
}

func (m *Members) RoleOf(ctx context.Context, userID, businessID uuid.UUID) (*string, error) {
	args := m.Called(ctx, userID, businessID)
	return value[*string](args, 0), args.Error(1)
}

func (m *Members) BusinessIDsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return value[[]uuid.UUID](args, 0), args.Error(1)
}

func (m *Members) Insert(ctx context.Context, create *member.MemberCreate) (*member.Member, error) {
	args := m.Called(ctx, create)
	return value[*member.Member](args, 0), args.Error(1)
}

func (m *Members) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*member.Member, error) {
	args := m.Called(ctx, id, role)
	return value[*member.Member](args, 0), args.Error(1)
}

func (m *Members) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type Cashbooks struct {
	mock.Mock
}

func (m *Cashbooks) FindByID(ctx context.Context, id uuid.UUID) (*cashbook.Cashbook, error) {
	args := m.Called(ctx, id)
	return value[*cashbook.Cashbook](args, 0), args.Error(1)
}

func (m *Cashbooks) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*cashbook.Cashbook, error) {
	args := m.Called(ctx, businessIDs)
	return value[[]*cashbook.Cashbook](args, 0), args.Error(1)
}

func (m *Cashbooks) Insert(ctx context.Context, businessID uuid.UUID, name string) (*cashbook.Cashbook, error) {
	args := m.Called(ctx, businessID, name)
	return value[*cashbook.Cashbook](args, 0), args.Error(1)
}

func (m *Cashbooks) Rename(ctx context.Context, id uuid.UUID, name string) (*cashbook.Cashbook, error) {
	args := m.Called(ctx, id, name)
	return value[*cashbook.Cashbook](args, 0), args.Error(1)
}

func (m *Cashbooks) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Cashbooks) LockByBusiness(ctx context.Context, businessID uuid.UUID) ([]*cashbook.Cashbook, error) {
	args := m.Called(ctx, businessID)
	return value[[]*cashbook.Cashbook](args, 0), args.Error(1)
}

func (m *Cashbooks) ClearDefault(ctx context.Context, businessID uuid.UUID) error {
	return m.Called(ctx, businessID).Error(0)
}

func (m *Cashbooks) MarkDefault(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type Categories struct {
	mock.Mock
}

func (m *Categories) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	return value[*category.Category](args, 0), args.Error(1)
}

func (m *Categories) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, businessIDs)
	return value[[]*category.Category](args, 0), args.Error(1)
}

func (m *Categories) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	return value[*category.Category](args, 0), args.Error(1)
}

func (m *Categories) InsertMissing(ctx context.Context, businessID uuid.UUID, seeds []category.CategoryCreate) (int, error) {
	args := m.Called(ctx, businessID, seeds)
	return args.Int(0), args.Error(1)
}

func (m *Categories) Update(ctx context.Context, id uuid.UUID, update *category.CategoryUpdate) (*category.Category, error) {
	args := m.Called(ctx, id, update)
	return value[*category.Category](args, 0), args.Error(1)
}

func (m *Categories) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type Parties struct {
	mock.Mock
}

func (m *Parties) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	return value[*party.Party](args, 0), args.Error(1)
}

func (m *Parties) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*party.Party, error) {
	args := m.Called(ctx, businessIDs)
	return value[[]*party.Party](args, 0), args.Error(1)
}

func (m *Parties) Insert(ctx context.Context, create *party.PartyCreate) (*party.Party, error) {
	args := m.Called(ctx, create)
	return value[*party.Party](args, 0), args.Error(1)
}

func (m *Parties) Update(ctx context.Context, id uuid.UUID, update *party.PartyUpdate) (*party.Party, error) {
	args := m.Called(ctx, id, update)
	return value[*party.Party](args, 0), args.Error(1)
}

func (m *Parties) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type PaymentModes struct {
	mock.Mock
}

func (m *PaymentModes) FindByID(ctx context.Context, id uuid.UUID) (*paymentmode.PaymentMode, error) {
	args := m.Called(ctx, id)
	return value[*paymentmode.PaymentMode](args, 0), args.Error(1)
}

func (m *PaymentModes) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*paymentmode.PaymentMode, error) {
	args := m.Called(ctx, businessIDs)
	return value[[]*paymentmode.PaymentMode](args, 0), args.Error(1)
}

func (m *PaymentModes) Insert(ctx context.Context, businessID uuid.UUID, name string) (*paymentmode.PaymentMode, error) {
	args := m.Called(ctx, businessID, name)
	return value[*paymentmode.PaymentMode](args, 0), args.Error(1)
}

func (m *PaymentModes) InsertMissing(ctx context.Context, businessID uuid.UUID, names []string) (int, error) {
	args := m.Called(ctx, businessID, names)
	return args.Int(0), args.Error(1)
}

func (m *PaymentModes) Rename(ctx context.Context, id uuid.UUID, name string) (*paymentmode.PaymentMode, error) {
	args := m.Called(ctx, id, name)
	return value[*paymentmode.PaymentMode](args, 0), args.Error(1)
}

func (m *PaymentModes) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type Transactions struct {
	mock.Mock
}

func (m *Transactions) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	return value[*transaction.Transaction](args, 0), args.Error(1)
}

func (m *Transactions) List(ctx context.Context, query *transaction.ListQuery) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, query)
	return value[[]*transaction.Transaction](args, 0), args.Error(1)
}

func (m *Transactions) LatestCreatedAt(ctx context.Context, cashbookID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, cashbookID)
	return value[*time.Time](args, 0), args.Error(1)
}

func (m *Transactions) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	return value[*transaction.Transaction](args, 0), args.Error(1)
}

func (m *Transactions) Update(ctx context.Context, id uuid.UUID, update *transaction.TransactionUpdate) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, update)
	return value[*transaction.Transaction](args, 0), args.Error(1)
}

func (m *Transactions) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
