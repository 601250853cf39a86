package member

import (
	"context"
	"database/sql"
	"errors"

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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	q := selectMembers(sm.Where(psql.Quote("m", "id").EQ(psql.Arg(id))))
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Member]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (r *Reader) ListByBusinessIDs(ctx context.Context, businessIDs []uuid.UUID) ([]*Member, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	q := selectMembers(
		sm.Where(psql.Quote("m", "business_id").In(psql.Arg(sqlconfig.Args(businessIDs)...))),
		sm.OrderBy(psql.Quote("m", "joined_at")).Asc(),
		sm.OrderBy(psql.Quote("m", "id")).Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Member]())
}

// RoleOf returns nil when the user holds no membership in the business.
func (r *Reader) RoleOf(ctx context.Context, userID, businessID uuid.UUID) (*string, error) {
	q := psql.Select(
		sm.Columns("role"),
		sm.From(sqlconfig.MembersTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
	)
	role, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *Reader) BusinessIDsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := psql.Select(
		sm.Columns("business_id"),
		sm.From(sqlconfig.MembersTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("joined_at").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

func selectMembers(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("m", "id"),
			psql.Quote("m", "user_id"),
			psql.Quote("m", "business_id"),
			psql.Quote("m", "role"),
			psql.Quote("m", "joined_at"),
			psql.Quote("u", "username"),
			psql.Quote("u", "full_name"),
		),
		sm.From(sqlconfig.MembersTable).As("m"),
		sm.InnerJoin(sqlconfig.UsersTable).As("u").On(
			psql.Quote("u", "id").EQ(psql.Quote("m", "user_id")),
		),
	}, mods...)...)
}
