package transaction

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	CashbookID      string  `json:"cashbook_id" doc:"Cashbook UUID"`
	Type            string  `json:"type" enum:"IN,OUT" doc:"Cash flow direction"`
	Amount          string  `json:"amount" doc:"Amount with two decimals"`
	Remark          string  `json:"remark" doc:"Free-text remark"`
	CategoryID      *string `json:"category_id" doc:"Category UUID"`
	CategoryName    *string `json:"category_name" doc:"Category name"`
	PartyID         *string `json:"party_id" doc:"Party UUID"`
	PartyName       *string `json:"party_name" doc:"Party name"`
	PaymentModeID   *string `json:"payment_mode_id" doc:"Payment mode UUID"`
	PaymentModeName *string `json:"payment_mode_name" doc:"Payment mode name"`
	CreatedBy       string  `json:"created_by" doc:"UUID of the recording user"`
	CreatedByName   string  `json:"created_by_name" doc:"Full name or username of the recording user"`
	CreatedAt       string  `json:"created_at" doc:"RFC3339 creation time"`
	TransactionDate string  `json:"transaction_date" doc:"Business date, YYYY-MM-DD"`
	TransactionTime string  `json:"transaction_time" doc:"Business time, HH:MM:SS"`
	RunningBalance  *string `json:"running_balance,omitempty" doc:"Balance right after this transaction within the listed set"`
}

// Totals is the API response model for ledger aggregates.
type Totals struct {
	TotalIn    string `json:"total_in" doc:"Sum of IN amounts"`
	TotalOut   string `json:"total_out" doc:"Sum of OUT amounts"`
	NetBalance string `json:"net_balance" doc:"TotalIn minus TotalOut"`
}

// NewTransaction renders tx. balance is nil outside a ledger listing.
func NewTransaction(tx *service.Transaction, balance *decimal.Decimal) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		CashbookID:      tx.CashbookID.String(),
		Type:            string(tx.Type),
		Amount:          httperr.Money(tx.Amount),
		Remark:          tx.Remark,
		CategoryID:      nullableID(tx.CategoryID),
		CategoryName:    tx.CategoryName,
		PartyID:         nullableID(tx.PartyID),
		PartyName:       tx.PartyName,
		PaymentModeID:   nullableID(tx.PaymentModeID),
		PaymentModeName: tx.PaymentModeName,
		CreatedBy:       tx.CreatedBy.String(),
		CreatedByName:   tx.CreatedByName,
		CreatedAt:       httperr.Timestamp(tx.CreatedAt),
		TransactionDate: tx.TransactionDate.String(),
		TransactionTime: tx.TransactionTime,
	}
	if balance != nil {
		rendered := httperr.Money(*balance)
		out.RunningBalance = &rendered
	}
	return out
}

// NewRows renders annotated ledger rows in their given order.
func NewRows(rows []ledger.Row[service.Transaction]) []Transaction {
	out := make([]Transaction, len(rows))
	for i := range rows {
		out[i] = NewTransaction(&rows[i].Item, &rows[i].RunningBalance)
	}
	return out
}

func NewTotals(totals ledger.Totals) Totals {
	return Totals{
		TotalIn:    httperr.Money(totals.TotalIn),
		TotalOut:   httperr.Money(totals.TotalOut),
		NetBalance: httperr.Money(totals.NetBalance),
	}
}

func nullableID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}
