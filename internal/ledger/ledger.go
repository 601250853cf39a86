// Package ledger computes running balances and totals over cash book transactions.
//
// The engine is pure: callers hand it transactions already restricted to what the actor may
// see and already ordered ascending by (transaction date, creation time, insertion order).
// Balances are computed only over the slice it is given, so a date-filtered window starts
// from zero rather than from the historical opening balance.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction is the cash flow direction of a transaction.
type Direction string

const (
	In  Direction = "IN"
	Out Direction = "OUT"
)

// ParseDirection validates a textual direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case In, Out:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction %q, expected IN or OUT", s)
}

// Posting is anything that moves the balance by a positive amount in one direction.
type Posting interface {
	Direction() Direction
	Value() decimal.Decimal
}

// Row pairs an item with the balance right after it was applied.
type Row[T Posting] struct {
	Item           T
	RunningBalance decimal.Decimal
}

// Totals are the aggregates of one pass.
type Totals struct {
	TotalIn    decimal.Decimal
	TotalOut   decimal.Decimal
	NetBalance decimal.Decimal
}

// Ledger is an annotated view in display order (newest first) plus its totals.
type Ledger[T Posting] struct {
	Rows   []Row[T]
	Totals Totals
}

// Annotate walks items in their given (chronological) order accumulating the running
// balance, then returns the rows newest first. Totals always reflect the ascending scan.
func Annotate[T Posting](items []T) Ledger[T] {
	rows := make([]Row[T], len(items))
	var acc accumulator
	for i, item := range items {
		acc.apply(item)
		rows[i] = Row[T]{Item: item, RunningBalance: acc.balance}
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return Ledger[T]{Rows: rows, Totals: acc.totals()}
}

// Summarize is the totals-only mode of Annotate.
func Summarize[T Posting](items []T) Totals {
	var acc accumulator
	for _, item := range items {
		acc.apply(item)
	}
	return acc.totals()
}

type accumulator struct {
	balance  decimal.Decimal
	totalIn  decimal.Decimal
	totalOut decimal.Decimal
}

func (a *accumulator) apply(p Posting) {
	amount := p.Value()
	switch p.Direction() {
	case In:
		a.balance = a.balance.Add(amount)
		a.totalIn = a.totalIn.Add(amount)
	case Out:
		a.balance = a.balance.Sub(amount)
		a.totalOut = a.totalOut.Add(amount)
	}
}

func (a *accumulator) totals() Totals {
	return Totals{
		TotalIn:    a.totalIn,
		TotalOut:   a.totalOut,
		NetBalance: a.totalIn.Sub(a.totalOut),
	}
}

// Page returns the slice of rows at [position, position+limit) and whether more remain.
func Page[T Posting](rows []Row[T], position, limit int) ([]Row[T], bool) {
	if position < 0 {
		position = 0
	}
	if position >= len(rows) || limit <= 0 {
		return nil, false
	}
	end := position + limit
	if end >= len(rows) {
		return rows[position:], false
	}
	return rows[position:end], true
}
