package transaction

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

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(sqlconfig.TransactionsTable,
			"cashbook_id", "type", "amount", "remark",
			"category_id", "party_id", "payment_mode_id", "created_by",
			"transaction_date", "transaction_time",
		),
		im.Values(
			psql.Arg(create.CashbookID),
			psql.Arg(create.Type),
			psql.Arg(create.Amount),
			psql.Arg(create.Remark),
			psql.Arg(create.CategoryID),
			psql.Arg(create.PartyID),
			psql.Arg(create.PaymentModeID),
			psql.Arg(create.CreatedBy),
			psql.Arg(create.TransactionDate.String()),
			psql.Arg(create.TransactionTime.String()),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return nil, sqlconfig.Translate(err)
	}
	return w.FindByID(ctx, id)
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Type.Get(); ok {
		setMods = append(setMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		setMods = append(setMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Remark.Get(); ok {
		setMods = append(setMods, um.SetCol("remark").ToArg(v))
	}
	if v, ok := update.CategoryID.Get(); ok {
		setMods = append(setMods, um.SetCol("category_id").ToArg(v))
	}
	if !update.PartyID.IsUnset() {
		setMods = append(setMods, um.SetCol("party_id").ToArg(update.PartyID.MustPtr()))
	}
	if v, ok := update.PaymentModeID.Get(); ok {
		setMods = append(setMods, um.SetCol("payment_mode_id").ToArg(v))
	}
	if len(setMods) == 0 {
		return w.FindByID(ctx, id)
	}

	q := psql.Update(append(setMods,
		um.Table(sqlconfig.TransactionsTable),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)...)
	if err := sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q)); err != nil {
		return nil, err
	}
	return w.FindByID(ctx, id)
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(sqlconfig.TransactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.ExpectOne(bob.Exec(ctx, w.tx, q))
}
