package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
)

// CashbookService handles cashbooks of every business the actor owns or belongs to.
type CashbookService struct {
	*deps
}

func (s *CashbookService) List(ctx context.Context, actor uuid.UUID) ([]*Cashbook, error) {
	businessIDs, err := s.resolver.AccessibleBusinessIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(businessIDs) == 0 {
		return nil, nil
	}
	rows, err := s.reader.Cashbooks.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, cashbookFromStorage), nil
}

func (s *CashbookService) Get(ctx context.Context, actor, id uuid.UUID) (*Cashbook, error) {
	row, _, err := s.authorizeCashbook(ctx, actor, id, access.CapabilityRead)
	if err != nil {
		return nil, err
	}
	return cashbookFromStorage(row), nil
}

// Create records a cashbook in businessID. Without a business the actor's first owned
// business is used, and one named after the actor is provisioned when they own none.
func (s *CashbookService) Create(ctx context.Context, actor uuid.UUID, name string, businessID uuid.NullUUID) (*Cashbook, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	if businessID.Valid {
		if _, err := s.resolver.Require(ctx, actor, businessID.UUID, access.CapabilityWrite); err != nil {
			return nil, err
		}
	}

	action := &actions.CreateCashbook{ActorID: actor, BusinessID: businessID, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return cashbookFromStorage(action.Result), nil
}

func (s *CashbookService) Update(ctx context.Context, actor, id uuid.UUID, name string) (*Cashbook, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizeCashbook(ctx, actor, id, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.RenameCashbook{ID: id, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return cashbookFromStorage(action.Result), nil
}

// Delete removes the cashbook and its transactions.
func (s *CashbookService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if _, _, err := s.authorizeCashbook(ctx, actor, id, access.CapabilityDelete); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteCashbook{ID: id})
}

// SetDefault makes id the only default cashbook of its business.
func (s *CashbookService) SetDefault(ctx context.Context, actor, id uuid.UUID) (*Cashbook, error) {
	if _, _, err := s.authorizeCashbook(ctx, actor, id, access.CapabilityWrite); err != nil {
		return nil, err
	}
	if err := s.processor.Process(ctx, &actions.SetDefaultCashbook{CashbookID: id}); err != nil {
		return nil, err
	}

	row, err := s.reader.Cashbooks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cashbookFromStorage(row), nil
}

func (s *CashbookService) UserRole(ctx context.Context, actor, id uuid.UUID) (*RoleInfo, error) {
	_, role, err := s.authorizeCashbook(ctx, actor, id, access.CapabilityRead)
	if err != nil {
		return nil, err
	}
	return &RoleInfo{
		Role:      role,
		CanCreate: role.CanWrite(),
		CanEdit:   role.CanWrite(),
		CanDelete: role.CanDelete(),
	}, nil
}

// authorizeCashbook loads the cashbook and checks the actor's role in its business.
func (d *deps) authorizeCashbook(ctx context.Context, actor, id uuid.UUID, capability access.Capability) (*cashbook.Cashbook, access.Role, error) {
	row, err := d.reader.Cashbooks.FindByID(ctx, id)
	if err != nil {
		return nil, access.RoleNone, err
	}
	role, err := d.resolver.Require(ctx, actor, row.BusinessID, capability)
	if err != nil {
		return nil, role, err
	}
	return row, role, nil
}
