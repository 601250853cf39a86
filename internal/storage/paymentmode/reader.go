package paymentmode

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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*PaymentMode, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.PaymentModesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*PaymentMode]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (r *Reader) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*PaymentMode, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.PaymentModesTable),
		sm.Where(psql.Quote("business_id").In(psql.Arg(sqlconfig.Args(businessIDs)...))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*PaymentMode]())
}
