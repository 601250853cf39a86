package cashbook

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

var _ IWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, businessID uuid.UUID, name string) (*Cashbook, error) {
	q := psql.Insert(
		im.Into(sqlconfig.CashbooksTable, "business_id", "name"),
		im.Values(psql.Arg(businessID), psql.Arg(name)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Cashbook]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) Rename(ctx context.Context, id uuid.UUID, name string) (*Cashbook, error) {
	q := psql.Update(
		um.Table(sqlconfig.CashbooksTable),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Cashbook]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

// Delete removes the cashbook together with its transactions.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.CashbooksTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}

func (w *Writer) LockByBusiness(ctx context.Context, businessID uuid.UUID) ([]*Cashbook, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.CashbooksTable),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
		sm.OrderBy("id").Asc(),
		sm.ForUpdate(),
	)
	return bob.All(ctx, w.tx, q, scan.StructMapper[*Cashbook]())
}

func (w *Writer) ClearDefault(ctx context.Context, businessID uuid.UUID) error {
	q := psql.Update(
		um.Table(sqlconfig.CashbooksTable),
		um.SetCol("is_default").ToArg(false),
		um.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
		um.Where(psql.Quote("is_default")),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return sqlconfig.Translate(err)
}

func (w *Writer) MarkDefault(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table(sqlconfig.CashbooksTable),
		um.SetCol("is_default").ToArg(true),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
