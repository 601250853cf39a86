package business

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Business, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(sqlconfig.BusinessesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Business]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

// ListByOwner returns the owner's businesses, oldest first.
func (r *Reader) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*Business, error) {
	return r.list(ctx,
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
}

func (r *Reader) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Business, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx,
		sm.Where(psql.Quote("id").In(psql.Arg(sqlconfig.Args(ids)...))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
}

func (r *Reader) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	q := psql.Select(
		sm.Columns("owner_id"),
		sm.From(sqlconfig.BusinessesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	owner, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlconfig.Translate(err)
	}
	return owner, nil
}

func (r *Reader) IDsOwnedBy(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error) {
	q := psql.Select(
		sm.Columns("id"),
		sm.From(sqlconfig.BusinessesTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.OrderBy("created_at").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

func (r *Reader) list(ctx context.Context, mods ...bob.Mod[*dialect.SelectQuery]) ([]*Business, error) {
	q := psql.Select(append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.BusinessesTable),
	}, mods...)...)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Business]())
}
