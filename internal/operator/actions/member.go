package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/member"
)

type CreateMember struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       string

	Result *member.Member
}

func (c *CreateMember) Perform(ctx context.Context, writer *storage.Writer) error {
	// The user must exist; a missing one surfaces as not found rather than a key violation.
	if _, err := writer.Users.FindByID(ctx, c.UserID); err != nil {
		return err
	}
	row, err := writer.Members.Insert(ctx, &member.MemberCreate{
		UserID:     c.UserID,
		BusinessID: c.BusinessID,
		Role:       c.Role,
	})
	if err != nil {
		return err
	}
	c.Result = row
	return nil
}

type UpdateMemberRole struct {
	ID   uuid.UUID
	Role string

	Result *member.Member
}

func (u *UpdateMemberRole) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Members.UpdateRole(ctx, u.ID, u.Role)
	if err != nil {
		return err
	}
	u.Result = row
	return nil
}

type DeleteMember struct {
	ID uuid.UUID
}

func (d *DeleteMember) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Members.Delete(ctx, d.ID)
}
