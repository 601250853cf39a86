package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/business"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/user"
)

// DefaultBusinessName names the business provisioned for a user's first cashbook.
func DefaultBusinessName(u *user.User) string {
	return u.DisplayName() + "'s Business"
}

// CreateCashbook records a cashbook in BusinessID. Without a BusinessID it uses the actor's
// oldest owned business, provisioning one when the actor owns none.
type CreateCashbook struct {
	ActorID    uuid.UUID
	BusinessID uuid.NullUUID
	Name       string

	Result              *cashbook.Cashbook
	ProvisionedBusiness *business.Business
}

func (c *CreateCashbook) Perform(ctx context.Context, writer *storage.Writer) error {
	businessID, err := c.resolveBusiness(ctx, writer)
	if err != nil {
		return err
	}

	row, err := writer.Cashbooks.Insert(ctx, businessID, c.Name)
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

func (c *CreateCashbook) resolveBusiness(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	if c.BusinessID.Valid {
		return c.BusinessID.UUID, nil
	}

	if err := writer.Businesses.LockOwner(ctx, c.ActorID); err != nil {
		return uuid.Nil, err
	}
	owned, err := writer.Businesses.ListByOwner(ctx, c.ActorID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(owned) > 0 {
		return owned[0].ID, nil
	}

	actor, err := writer.Users.FindByID(ctx, c.ActorID)
	if err != nil {
		return uuid.Nil, err
	}
	created, err := writer.Businesses.Insert(ctx, DefaultBusinessName(actor), c.ActorID)
	if err != nil {
		return uuid.Nil, err
	}
	c.ProvisionedBusiness = created
	return created.ID, nil
}

type RenameCashbook struct {
	ID   uuid.UUID
	Name string

	Result *cashbook.Cashbook
}

func (r *RenameCashbook) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Cashbooks.Rename(ctx, r.ID, r.Name)
	if err != nil {
		return err
	}
	r.Result = row
	return nil
}

type DeleteCashbook struct {
	ID uuid.UUID
}

func (d *DeleteCashbook) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Cashbooks.Delete(ctx, d.ID)
}

// SetDefaultCashbook makes CashbookID the only default of its business. The sibling rows
// are locked first so concurrent toggles on the same business serialize.
type SetDefaultCashbook struct {
	CashbookID uuid.UUID
}

func (s *SetDefaultCashbook) Perform(ctx context.Context, writer *storage.Writer) error {
	target, err := writer.Cashbooks.FindByID(ctx, s.CashbookID)
	if err != nil {
		return err
	}

	siblings, err := writer.Cashbooks.LockByBusiness(ctx, target.BusinessID)
	if err != nil {
		return err
	}
	if !containsCashbook(siblings, s.CashbookID) {
		// Deleted or moved between the lookup and the lock.
		return apperr.ErrNotFound
	}

	if err := writer.Cashbooks.ClearDefault(ctx, target.BusinessID); err != nil {
		return err
	}
	return writer.Cashbooks.MarkDefault(ctx, s.CashbookID)
}

func containsCashbook(cashbooks []*cashbook.Cashbook, id uuid.UUID) bool {
	for _, c := range cashbooks {
		if c.ID == id {
			return true
		}
	}
	return false
}
