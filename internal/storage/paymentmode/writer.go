package paymentmode

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

func (w *Writer) Insert(ctx context.Context, businessID uuid.UUID, name string) (*PaymentMode, error) {
	q := psql.Insert(
		im.Into(sqlconfig.PaymentModesTable, "business_id", "name"),
		im.Values(psql.Arg(businessID), psql.Arg(name)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*PaymentMode]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) InsertMissing(ctx context.Context, businessID uuid.UUID, names []string) (int, error) {
	existing, err := w.ListByBusinessIDs(ctx, []uuid.UUID{businessID})
	if err != nil {
		return 0, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, mode := range existing {
		have[mode.Name] = struct{}{}
	}

	added := 0
	for _, name := range names {
		if _, ok := have[name]; ok {
			continue
		}
		if _, err := w.Insert(ctx, businessID, name); err != nil {
			return added, err
		}
		have[name] = struct{}{}
		added++
	}
	return added, nil
}

func (w *Writer) Rename(ctx context.Context, id uuid.UUID, name string) (*PaymentMode, error) {
	q := psql.Update(
		um.Table(sqlconfig.PaymentModesTable),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*PaymentMode]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.PaymentModesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
