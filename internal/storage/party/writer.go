package party

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
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

func (w *Writer) Insert(ctx context.Context, create *PartyCreate) (*Party, error) {
	q := psql.Insert(
		im.Into(sqlconfig.PartiesTable, "business_id", "name", "phone"),
		im.Values(psql.Arg(create.BusinessID), psql.Arg(create.Name), psql.Arg(create.Phone)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Party]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *PartyUpdate) (*Party, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if name, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(name))
	}
	if !update.Phone.IsUnset() {
		setMods = append(setMods, um.SetCol("phone").ToArg(update.Phone.MustPtr()))
	}
	if len(setMods) == 0 {
		return w.FindByID(ctx, id)
	}

	q := psql.Update(append(setMods,
		um.Table(sqlconfig.PartiesTable),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)...)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Party]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.PartiesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
