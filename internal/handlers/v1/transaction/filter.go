package transaction

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// FilterParams are the query parameters shared by the transaction list and the summary.
type FilterParams struct {
	Cashbook    string `query:"cashbook" doc:"Cashbook UUID"`
	Type        string `query:"type" doc:"IN or OUT"`
	Category    string `query:"category" doc:"Category UUID"`
	Party       string `query:"party" doc:"Party UUID"`
	PaymentMode string `query:"payment_mode" doc:"Payment mode UUID"`
	CreatedBy   string `query:"created_by" doc:"UUID of the recording user"`
	Member      string `query:"member" doc:"Member UUID; an unknown member matches nothing"`
	Duration    string `query:"duration" doc:"ALL_TIME, TODAY, LAST_7_DAYS, LAST_30_DAYS or THIS_MONTH"`
	StartDate   string `query:"start_date" doc:"Inclusive lower bound, YYYY-MM-DD"`
	EndDate     string `query:"end_date" doc:"Inclusive upper bound, YYYY-MM-DD"`
	Search      string `query:"search" doc:"Case-insensitive substring of the remark or of the two-decimal amount"`
}

// parseFilterParams parses and validates the filter parameters.
func parseFilterParams(p *FilterParams) (service.TransactionQuery, error) {
	var (
		query service.TransactionQuery
		err   error
	)
	f := &query.Filter

	if f.CashbookID, err = httperr.ParseOptionalIDPtr("cashbook", p.Cashbook); err != nil {
		return query, err
	}
	if f.CategoryID, err = httperr.ParseOptionalIDPtr("category", p.Category); err != nil {
		return query, err
	}
	if f.PartyID, err = httperr.ParseOptionalIDPtr("party", p.Party); err != nil {
		return query, err
	}
	if f.PaymentModeID, err = httperr.ParseOptionalIDPtr("payment_mode", p.PaymentMode); err != nil {
		return query, err
	}
	if f.CreatedBy, err = httperr.ParseOptionalIDPtr("created_by", p.CreatedBy); err != nil {
		return query, err
	}
	if p.Type != "" {
		direction, err := ledger.ParseDirection(p.Type)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		f.Type = &direction
	}
	if f.Duration, err = ledger.ParseDuration(p.Duration); err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid duration", err)
	}
	if f.StartDate, err = httperr.ParseOptionalDate("start_date", p.StartDate); err != nil {
		return query, err
	}
	if f.EndDate, err = httperr.ParseOptionalDate("end_date", p.EndDate); err != nil {
		return query, err
	}
	f.Search = p.Search
	query.MemberID = p.Member
	return query, nil
}
