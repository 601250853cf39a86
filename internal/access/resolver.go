package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/apperr"
)

// OwnerLookup returns the owner of a business, or apperr.ErrNotFound.
type OwnerLookup interface {
	OwnerOf(ctx context.Context, businessID uuid.UUID) (uuid.UUID, error)
	IDsOwnedBy(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error)
}

// MembershipLookup returns the actor's member role in a business, nil when absent.
type MembershipLookup interface {
	RoleOf(ctx context.Context, userID, businessID uuid.UUID) (*string, error)
	BusinessIDsOf(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Resolver evaluates ownership and membership as two explicit clauses.
type Resolver struct {
	owners  OwnerLookup
	members MembershipLookup
}

func NewResolver(owners OwnerLookup, members MembershipLookup) *Resolver {
	return &Resolver{owners: owners, members: members}
}

// RoleFor returns the actor's role in the business. A missing business yields RoleNone.
func (r *Resolver) RoleFor(ctx context.Context, actor, businessID uuid.UUID) (Role, error) {
	owner, err := r.owners.OwnerOf(ctx, businessID)
	if errors.Is(err, apperr.ErrNotFound) {
		return RoleNone, nil
	}
	if err != nil {
		return RoleNone, err
	}
	if owner == actor {
		return RoleOwner, nil
	}

	stored, err := r.members.RoleOf(ctx, actor, businessID)
	if err != nil {
		return RoleNone, err
	}
	var membership *Role
	if stored != nil {
		role := Role(*stored)
		membership = &role
	}
	return Decide(actor, owner, membership), nil
}

// Require fails with apperr.ErrNotFound when the actor has no role at all and with
// apperr.ErrPermissionDenied when the role is too weak for the capability.
func (r *Resolver) Require(ctx context.Context, actor, businessID uuid.UUID, capability Capability) (Role, error) {
	role, err := r.RoleFor(ctx, actor, businessID)
	if err != nil {
		return RoleNone, err
	}
	if role == RoleNone {
		return RoleNone, apperr.ErrNotFound
	}
	if !role.Allows(capability) {
		return role, fmt.Errorf("%w: role %s cannot %s", apperr.ErrPermissionDenied, role, capability)
	}
	return role, nil
}

// AccessibleBusinessIDs is the union of owned businesses and member businesses.
func (r *Resolver) AccessibleBusinessIDs(ctx context.Context, actor uuid.UUID) ([]uuid.UUID, error) {
	owned, err := r.owners.IDsOwnedBy(ctx, actor)
	if err != nil {
		return nil, err
	}
	joined, err := r.members.BusinessIDsOf(ctx, actor)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(owned)+len(joined))
	ids := make([]uuid.UUID, 0, len(owned)+len(joined))
	for _, id := range append(owned, joined...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
