package ledger

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Duration is a named relative date range.
type Duration string

const (
	DurationAllTime    Duration = "ALL_TIME"
	DurationToday      Duration = "TODAY"
	DurationLast7Days  Duration = "LAST_7_DAYS"
	DurationLast30Days Duration = "LAST_30_DAYS"
	DurationThisMonth  Duration = "THIS_MONTH"
)

// ParseDuration validates a duration shorthand. The empty string means ALL_TIME.
func ParseDuration(s string) (Duration, error) {
	switch d := Duration(s); d {
	case "":
		return DurationAllTime, nil
	case DurationAllTime, DurationToday, DurationLast7Days, DurationLast30Days, DurationThisMonth:
		return d, nil
	}
	return "", fmt.Errorf("invalid duration %q", s)
}

// Window is an inclusive date range; a nil bound is open.
type Window struct {
	Start *civil.Date
	End   *civil.Date
}

// Window translates the shorthand into a date range relative to today.
func (d Duration) Window(today civil.Date) Window {
	switch d {
	case DurationToday:
		return Window{Start: &today, End: &today}
	case DurationLast7Days:
		start := today.AddDays(-7)
		return Window{Start: &start}
	case DurationLast30Days:
		start := today.AddDays(-30)
		return Window{Start: &start}
	case DurationThisMonth:
		first := civil.Date{Year: today.Year, Month: today.Month, Day: 1}
		last := civil.DateOf(first.In(time.UTC).AddDate(0, 1, -1))
		return Window{Start: &first, End: &last}
	}
	return Window{}
}

// Intersect returns the range satisfying both windows.
func (w Window) Intersect(o Window) Window {
	out := w
	if o.Start != nil && (out.Start == nil || o.Start.After(*out.Start)) {
		out.Start = o.Start
	}
	if o.End != nil && (out.End == nil || o.End.Before(*out.End)) {
		out.End = o.End
	}
	return out
}

// Empty reports whether no date can satisfy the window.
func (w Window) Empty() bool {
	return w.Start != nil && w.End != nil && w.Start.After(*w.End)
}

func (w Window) Contains(d civil.Date) bool {
	if w.Start != nil && d.Before(*w.Start) {
		return false
	}
	if w.End != nil && d.After(*w.End) {
		return false
	}
	return true
}

// Filter is the conjunction of optional transaction predicates.
type Filter struct {
	CashbookID    *uuid.UUID
	Type          *Direction
	CategoryID    *uuid.UUID
	PartyID       *uuid.UUID
	PaymentModeID *uuid.UUID
	CreatedBy     *uuid.UUID
	Duration      Duration
	StartDate     *civil.Date
	EndDate       *civil.Date
	Search        string
}

// Window combines the duration shorthand with the explicit bounds. Both apply.
func (f Filter) Window(today civil.Date) Window {
	return f.Duration.Window(today).Intersect(Window{Start: f.StartDate, End: f.EndDate})
}

// Candidate is the subset of a transaction the predicates look at.
type Candidate struct {
	CashbookID      uuid.UUID
	Type            Direction
	CategoryID      uuid.NullUUID
	PartyID         uuid.NullUUID
	PaymentModeID   uuid.NullUUID
	CreatedBy       uuid.UUID
	TransactionDate civil.Date
	Remark          string
	Amount          decimal.Decimal
}

// Matches evaluates every predicate of f against c.
func (f Filter) Matches(c Candidate, today civil.Date) bool {
	if f.CashbookID != nil && c.CashbookID != *f.CashbookID {
		return false
	}
	if f.Type != nil && c.Type != *f.Type {
		return false
	}
	if !matchesRef(f.CategoryID, c.CategoryID) ||
		!matchesRef(f.PartyID, c.PartyID) ||
		!matchesRef(f.PaymentModeID, c.PaymentModeID) {
		return false
	}
	if f.CreatedBy != nil && c.CreatedBy != *f.CreatedBy {
		return false
	}
	if !f.Window(today).Contains(c.TransactionDate) {
		return false
	}
	return MatchesSearch(f.Search, c.Remark, c.Amount)
}

// MatchesSearch is a case-insensitive substring match on the remark or the two-decimal
// text of the amount. An empty term matches everything.
func MatchesSearch(term, remark string, amount decimal.Decimal) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(remark), term) ||
		strings.Contains(amount.StringFixed(2), term)
}

func matchesRef(want *uuid.UUID, got uuid.NullUUID) bool {
	if want == nil {
		return true
	}
	return got.Valid && got.UUID == *want
}
