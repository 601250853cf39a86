package cashbook

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Cashbook, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.CashbooksTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Cashbook]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

// ListByBusinessIDs returns the cashbooks of the given businesses, oldest first.
func (r *Reader) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Cashbook, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.CashbooksTable),
		sm.Where(psql.Quote("business_id").In(psql.Arg(sqlconfig.Args(businessIDs)...))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Cashbook]())
}
