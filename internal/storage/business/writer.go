package business

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

// LockOwner locks the owner's user row until the transaction ends, serializing the
// owner's business provisioning.
func (w *Writer) LockOwner(ctx context.Context, owner uuid.UUID) error {
	q := psql.Select(
		sm.Columns("id"),
		sm.From(sqlconfig.UsersTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(owner))),
		sm.ForUpdate(),
	)
	if _, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID]); err != nil {
		return sqlconfig.Translate(err)
	}
	return nil
}

func (w *Writer) Insert(ctx context.Context, name string, owner uuid.UUID) (*Business, error) {
	q := psql.Insert(
		im.Into(sqlconfig.BusinessesTable, "name", "owner_id"),
		im.Values(psql.Arg(name), psql.Arg(owner)),
		im.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Business]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, name string) (*Business, error) {
	q := psql.Update(
		um.Table(sqlconfig.BusinessesTable),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Business]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

// Delete removes the business; cashbooks, members and lookups cascade with it.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.BusinessesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
