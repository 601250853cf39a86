// Package export renders a cashbook report as a spreadsheet or a paginated document.
package export

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

// Report is a cashbook's annotated ledger with its rows in chronological order.
type Report struct {
	CashbookName string
	BusinessName string
	GeneratedAt  time.Time
	Totals       ledger.Totals
	Rows         []Row
}

// Row is one transaction line. Empty reference names render as "-".
type Row struct {
	Date        civil.Date
	Time        string
	Type        ledger.Direction
	Party       string
	Category    string
	PaymentMode string
	Remark      string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
}

var headers = []string{"Date", "Time", "Type", "Party", "Category", "Payment Mode", "Remark", "Cash In", "Cash Out", "Balance"}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// split places the amount in the cash-in or cash-out column.
func (r Row) split() (in, out string) {
	if r.Type == ledger.In {
		return r.Amount.StringFixed(2), ""
	}
	return "", r.Amount.StringFixed(2)
}
