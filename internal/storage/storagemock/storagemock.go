// Package storagemock provides testify mocks of the storage interfaces.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashbook-server/internal/storage"
)

// Mocks bundles one mock per entity. The same mocks back both Reader and Writer.
type Mocks struct {
	Tx           *Tx
	Users        *Users
	Businesses   *Businesses
	Members      *Members
	Cashbooks    *Cashbooks
	Categories   *Categories
	Parties      *Parties
	PaymentModes *PaymentModes
	Transactions *Transactions
}

func New() *Mocks {
	return &Mocks{
		Tx:           new(Tx),
		Users:        new(Users),
		Businesses:   new(Businesses),
		Members:      new(Members),
		Cashbooks:    new(Cashbooks),
		Categories:   new(Categories),
		Parties:      new(Parties),
		PaymentModes: new(PaymentModes),
		Transactions: new(Transactions),
	}
}

func (m *Mocks) Reader() *storage.Reader {
	return &storage.Reader{
		Users:        m.Users,
		Businesses:   m.Businesses,
		Members:      m.Members,
		Cashbooks:    m.Cashbooks,
		Categories:   m.Categories,
		Parties:      m.Parties,
		PaymentModes: m.PaymentModes,
		Transactions: m.Transactions,
	}
}

func (m *Mocks) Writer() *storage.Writer {
	return &storage.Writer{
		Tx:           m.Tx,
		Users:        m.Users,
		Businesses:   m.Businesses,
		Members:      m.Members,
		Cashbooks:    m.Cashbooks,
		Categories:   m.Categories,
		Parties:      m.Parties,
		PaymentModes: m.PaymentModes,
		Transactions: m.Transactions,
	}
}

// AssertExpectations checks every mock in the bundle.
func (m *Mocks) AssertExpectations(t mock.TestingT) {
	m.Tx.AssertExpectations(t)
	m.Users.AssertExpectations(t)
	m.Businesses.AssertExpectations(t)
	m.Members.AssertExpectations(t)
	m.Cashbooks.AssertExpectations(t)
	m.Categories.AssertExpectations(t)
	m.Parties.AssertExpectations(t)
	m.PaymentModes.AssertExpectations(t)
	m.Transactions.AssertExpectations(t)
}

type Tx struct {
	mock.Mock
}

func (m *Tx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Tx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// value returns the first mocked return value as T, or its zero value when nil.
func value[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}
