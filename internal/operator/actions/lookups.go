package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/party"
	"github.com/carson-networks/cashbook-server/internal/storage/paymentmode"
)

type CreateCategory struct {
	Create category.CategoryCreate

	Result *category.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Categories.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateCategory struct {
	ID     uuid.UUID
	Update category.CategoryUpdate

	Result *category.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Categories.Update(ctx, u.ID, &u.Update)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteCategory struct {
	ID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, d.ID)
}

type CreateParty struct {
	Create party.PartyCreate

	Result *party.Party
}

func (c *CreateParty) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Parties.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateParty struct {
	ID     uuid.UUID
	Update party.PartyUpdate

	Result *party.Party
}

func (u *UpdateParty) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Parties.Update(ctx, u.ID, &u.Update)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteParty struct {
	ID uuid.UUID
}

func (d *DeleteParty) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Parties.Delete(ctx, d.ID)
}

type CreatePaymentMode struct {
	BusinessID uuid.UUID
	Name       string

	Result *paymentmode.PaymentMode
}

func (c *CreatePaymentMode) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.PaymentModes.Insert(ctx, c.BusinessID, c.Name)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type RenamePaymentMode struct {
	ID   uuid.UUID
	Name string

	Result *paymentmode.PaymentMode
}

func (r *RenamePaymentMode) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.PaymentModes.Rename(ctx, r.ID, r.Name)
	if err != nil {
		return err
	}
	r.Result = row
	return nil
}

type DeletePaymentMode struct {
	ID uuid.UUID
}

func (d *DeletePaymentMode) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.PaymentModes.Delete(ctx, d.ID)
}
