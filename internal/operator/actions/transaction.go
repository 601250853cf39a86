package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

type CreateTransaction struct {
	Create transaction.TransactionCreate

	Result *transaction.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}
	t.Result = row
	return nil
}

type UpdateTransaction struct {
	ID     uuid.UUID
	Update transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, t.ID, &t.Update)
	if err != nil {
		return err
	}
	t.Result = row
	return nil
}

type DeleteTransaction struct {
	ID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.ID)
}
