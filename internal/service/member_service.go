package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
)

// MemberService manages memberships. Every operation is limited to the business owner.
type MemberService struct {
	*deps
}

// List returns the members of the actor's businesses, or of businessID when given.
func (s *MemberService) List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*Member, error) {
	var businessIDs []uuid.UUID
	if businessID.Valid {
		if _, err := s.resolver.Require(ctx, actor, businessID.UUID, access.CapabilityManage); err != nil {
			return nil, err
		}
		businessIDs = []uuid.UUID{businessID.UUID}
	} else {
		owned, err := s.reader.Businesses.IDsOwnedBy(ctx, actor)
		if err != nil {
			return nil, err
		}
		businessIDs = owned
	}
	if len(businessIDs) == 0 {
		return nil, nil
	}

	rows, err := s.reader.Members.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, memberFromStorage), nil
}

func (s *MemberService) Create(ctx context.Context, actor uuid.UUID, input MemberInput) (*Member, error) {
	role, err := parseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, input.BusinessID, access.CapabilityManage); err != nil {
		return nil, err
	}
	if input.UserID == actor {
		return nil, apperr.Invalid("user_id", "the owner cannot be a member of their own business")
	}

	action := &actions.CreateMember{UserID: input.UserID, BusinessID: input.BusinessID, Role: string(role)}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, hideMissing("user_id", err)
	}
	return memberFromStorage(action.Result), nil
}

func (s *MemberService) UpdateRole(ctx context.Context, actor, id uuid.UUID, roleName string) (*Member, error) {
	role, err := access.ParseMemberRole(roleName)
	if err != nil {
		return nil, apperr.Invalid("role", "%s", err)
	}
	if err := s.authorizeMember(ctx, actor, id); err != nil {
		return nil, err
	}

	action := &actions.UpdateMemberRole{ID: id, Role: string(role)}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return memberFromStorage(action.Result), nil
}

func (s *MemberService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if err := s.authorizeMember(ctx, actor, id); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteMember{ID: id})
}

func (s *MemberService) authorizeMember(ctx context.Context, actor, id uuid.UUID) error {
	row, err := s.reader.Members.FindByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.resolver.Require(ctx, actor, row.BusinessID, access.CapabilityManage)
	return err
}

func parseRole(name string) (access.Role, error) {
	if name == "" {
		return access.RoleViewer, nil
	}
	role, err := access.ParseMemberRole(name)
	if err != nil {
		return access.RoleNone, apperr.Invalid("role", "%s", err)
	}
	return role, nil
}
