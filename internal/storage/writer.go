package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
	"github.com/carson-networks/cashbook-server/internal/storage/party"
	"github.com/carson-networks/cashbook-server/internal/storage/paymentmode"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// Transactor ends a database transaction.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the entity writers of one database transaction.
type Writer struct {
	Tx           Transactor
	Users        user.IReader
	Businesses   business.IWriter
	Members      member.IWriter
	Cashbooks    cashbook.IWriter
	Categories   category.IWriter
	Parties      party.IWriter
	PaymentModes paymentmode.IWriter
	Transactions transaction.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Users:        user.NewReader(tx),
		Businesses:   business.NewWriter(tx),
		Members:      member.NewWriter(tx),
		Cashbooks:    cashbook.NewWriter(tx),
		Categories:   category.NewWriter(tx),
		Parties:      party.NewWriter(tx),
		PaymentModes: paymentmode.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
