package transaction

import (
	"context"
	"strings"
	"time"

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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := selectTransactions(sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))))
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return row, nil
}

func (r *Reader) List(ctx context.Context, query *ListQuery) ([]*Transaction, error) {
	if len(query.CashbookIDs) == 0 || query.Window.Empty() {
		return nil, nil
	}

	mods := whereMods(query)
	mods = append(mods,
		sm.OrderBy(psql.Quote("t", "transaction_date")).Asc(),
		sm.OrderBy(psql.Quote("t", "created_at")).Asc(),
		sm.OrderBy(psql.Quote("t", "seq")).Asc(),
	)
	return bob.All(ctx, r.exec, selectTransactions(mods...), scan.StructMapper[*Transaction]())
}

// LatestCreatedAt returns nil for a cashbook without transactions.
func (r *Reader) LatestCreatedAt(ctx context.Context, cashbookID uuid.UUID) (*time.Time, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("max(created_at)")),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("cashbook_id").EQ(psql.Arg(cashbookID))),
	)
	latest, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[*time.Time])
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return latest, nil
}

func whereMods(query *ListQuery) []bob.Mod[*dialect.SelectQuery] {
	f := query.Filter
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("t", "cashbook_id").In(psql.Arg(sqlconfig.Args(query.CashbookIDs)...))),
	}
	if f.CashbookID != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "cashbook_id").EQ(psql.Arg(*f.CashbookID))))
	}
	if f.Type != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "type").EQ(psql.Arg(string(*f.Type)))))
	}
	if f.CategoryID != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "category_id").EQ(psql.Arg(*f.CategoryID))))
	}
	if f.PartyID != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "party_id").EQ(psql.Arg(*f.PartyID))))
	}
	if f.PaymentModeID != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "payment_mode_id").EQ(psql.Arg(*f.PaymentModeID))))
	}
	if f.CreatedBy != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "created_by").EQ(psql.Arg(*f.CreatedBy))))
	}
	if start := query.Window.Start; start != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "transaction_date").GTE(psql.Arg(start.String()))))
	}
	if end := query.Window.End; end != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "transaction_date").LTE(psql.Arg(end.String()))))
	}
	if query.MaxCreatedAt != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "created_at").LTE(psql.Arg(*query.MaxCreatedAt))))
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		mods = append(mods, sm.Where(psql.Raw("(t.remark ILIKE ? OR t.amount::text ILIKE ?)", pattern, pattern)))
	}
	return mods
}

// likePattern wraps term for a substring ILIKE, escaping the wildcard characters.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func selectTransactions(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("t", "id"),
			psql.Quote("t", "seq"),
			psql.Quote("t", "cashbook_id"),
			psql.Quote("t", "type"),
			psql.Quote("t", "amount"),
			psql.Quote("t", "remark"),
			psql.Quote("t", "category_id"),
			psql.Quote("t", "party_id"),
			psql.Quote("t", "payment_mode_id"),
			psql.Quote("t", "created_by"),
			psql.Quote("t", "created_at"),
			psql.Quote("t", "transaction_date"),
			psql.Raw("to_char(t.transaction_time, 'HH24:MI:SS') AS transaction_time"),
			psql.Raw("c.name AS category_name"),
			psql.Raw("p.name AS party_name"),
			psql.Raw("pm.name AS payment_mode_name"),
			psql.Raw("COALESCE(NULLIF(u.full_name, ''), u.username) AS created_by_name"),
		),
		sm.From(sqlconfig.TransactionsTable).As("t"),
		sm.LeftJoin(sqlconfig.CategoriesTable).As("c").On(
			psql.Quote("c", "id").EQ(psql.Quote("t", "category_id")),
		),
		sm.LeftJoin(sqlconfig.PartiesTable).As("p").On(
			psql.Quote("p", "id").EQ(psql.Quote("t", "party_id")),
		),
		sm.LeftJoin(sqlconfig.PaymentModesTable).As("pm").On(
			psql.Quote("pm", "id").EQ(psql.Quote("t", "payment_mode_id")),
		),
		sm.InnerJoin(sqlconfig.UsersTable).As("u").On(
			psql.Quote("u", "id").EQ(psql.Quote("t", "created_by")),
		),
	}, mods...)...)
}
