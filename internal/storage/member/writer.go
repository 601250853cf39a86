package member

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

// Insert adds the membership. A second membership for the same user and business is
// rejected by the unique constraint as apperr.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *MemberCreate) (*Member, error) {
	q := psql.Insert(
		im.Into(sqlconfig.MembersTable, "user_id", "business_id", "role"),
		im.Values(psql.Arg(create.UserID), psql.Arg(create.BusinessID), psql.Arg(create.Role)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return w.FindByID(ctx, id)
}

func (w *Writer) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*Member, error) {
	q := psql.Update(
		um.Table(sqlconfig.MembersTable),
		um.SetCol("role").ToArg(role),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	if err := sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q)); err != nil {
		return nil, err
	}
	return w.FindByID(ctx, id)
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.MembersTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
