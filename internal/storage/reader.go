package storage

import (
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

type Reader struct {
	Users        user.IReader
	Businesses   business.IReader
	Members      member.IReader
	Cashbooks    cashbook.IReader
	Categories   category.IReader
	Parties      party.IReader
	PaymentModes paymentmode.IReader
	Transactions transaction.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:        user.NewReader(exec),
		Businesses:   business.NewReader(exec),
		Members:      member.NewReader(exec),
		Cashbooks:    cashbook.NewReader(exec),
		Categories:   category.NewReader(exec),
		Parties:      party.NewReader(exec),
		PaymentModes: paymentmode.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
