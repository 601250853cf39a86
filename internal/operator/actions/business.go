package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
)

type CreateBusiness struct {
	OwnerID uuid.UUID
	Name    string

	Result *business.Business
}

func (c *CreateBusiness) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Businesses.Insert(ctx, c.Name, c.OwnerID)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateBusiness struct {
	ID   uuid.UUID
	Name string

	Result *business.Business
}

func (u *UpdateBusiness) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Businesses.Update(ctx, u.ID, u.Name)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteBusiness struct {
	ID uuid.UUID
}

func (d *DeleteBusiness) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Businesses.Delete(ctx, d.ID)
}
