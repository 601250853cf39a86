package category

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

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into(sqlconfig.CategoriesTable, "business_id", "name", "type"),
		im.Values(psql.Arg(create.BusinessID), psql.Arg(create.Name), psql.Arg(create.Type)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) InsertMissing(ctx context.Context, businessID uuid.UUID, seeds []CategoryCreate) (int, error) {
	existing, err := w.ListByBusinessIDs(ctx, []uuid.UUID{businessID})
	if err != nil {
		return 0, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[c.Name] = struct{}{}
	}

	added := 0
	for _, seed := range seeds {
		if _, ok := have[seed.Name]; ok {
			continue
		}
		seed.BusinessID = businessID
		if _, err := w.Insert(ctx, &seed); err != nil {
			return added, err
		}
		have[seed.Name] = struct{}{}
		added++
	}
	return added, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if name, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(name))
	}
	if categoryType, ok := update.Type.Get(); ok {
		setMods = append(setMods, um.SetCol("type").ToArg(categoryType))
	}
	if len(setMods) == 0 {
		return w.FindByID(ctx, id)
	}

	q := psql.Update(append(setMods,
		um.Table(sqlconfig.CategoriesTable),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)...)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

// Delete removes the category; transactions referencing it keep a null category.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.CategoriesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
