package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
	"github.com/carson-networks/cashbook-server/internal/storage/party"
)

const (
	CategoryTypeIn   = "IN"
	CategoryTypeOut  = "OUT"
	CategoryTypeBoth = "BOTH"
)

// CategoryService handles transaction categories. Viewers may only read.
type CategoryService struct {
	*deps
}

type CategoryInput struct {
	BusinessID uuid.UUID
	Name       string
	// Type defaults to BOTH.
	Type string
}

type CategoryPatch struct {
	Name omit.Val[string]
	Type omit.Val[string]
}

func (s *CategoryService) List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*Category, error) {
	businessIDs, err := s.scope(ctx, actor, businessID)
	if err != nil || len(businessIDs) == 0 {
		return nil, err
	}
	rows, err := s.reader.Categories.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, categoryFromStorage), nil
}

func (s *CategoryService) Get(ctx context.Context, actor, id uuid.UUID) (*Category, error) {
	row, err := s.reader.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, row.BusinessID, access.CapabilityRead); err != nil {
		return nil, err
	}
	return categoryFromStorage(row), nil
}

func (s *CategoryService) Create(ctx context.Context, actor uuid.UUID, input CategoryInput) (*Category, error) {
	name, err := requireName("name", input.Name)
	if err != nil {
		return nil, err
	}
	categoryType := CategoryTypeBoth
	if input.Type != "" {
		if categoryType, err = parseCategoryType(input.Type); err != nil {
			return nil, err
		}
	}
	if _, err := s.resolver.Require(ctx, actor, input.BusinessID, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{Create: category.CategoryCreate{
		BusinessID: input.BusinessID,
		Name:       name,
		Type:       categoryType,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoryFromStorage(action.Result), nil
}

func (s *CategoryService) Update(ctx context.Context, actor, id uuid.UUID, patch CategoryPatch) (*Category, error) {
	update := category.CategoryUpdate{}
	if name, ok := patch.Name.Get(); ok {
		name, err := requireName("name", name)
		if err != nil {
			return nil, err
		}
		update.Name.Set(name)
	}
	if categoryType, ok := patch.Type.Get(); ok {
		categoryType, err := parseCategoryType(categoryType)
		if err != nil {
			return nil, err
		}
		update.Type.Set(categoryType)
	}
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.UpdateCategory{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoryFromStorage(action.Result), nil
}

// Delete removes the category. Transactions that used it keep existing without one.
func (s *CategoryService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteCategory{ID: id})
}

func (s *CategoryService) authorize(ctx context.Context, actor, id uuid.UUID, capability access.Capability) error {
	row, err := s.reader.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.resolver.Require(ctx, actor, row.BusinessID, capability)
	return err
}

func parseCategoryType(s string) (string, error) {
	switch s {
	case CategoryTypeIn, CategoryTypeOut, CategoryTypeBoth:
		return s, nil
	}
	return "", apperr.Invalid("type", "must be IN, OUT or BOTH")
}

// PartyService handles the customers and suppliers of a business.
type PartyService struct {
	*deps
}

type PartyInput struct {
	BusinessID uuid.UUID
	Name       string
	Phone      *string
}

type PartyPatch struct {
	Name  omit.Val[string]
	Phone omitnull.Val[string]
}

func (s *PartyService) List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*Party, error) {
	businessIDs, err := s.scope(ctx, actor, businessID)
	if err != nil || len(businessIDs) == 0 {
		return nil, err
	}
	rows, err := s.reader.Parties.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, partyFromStorage), nil
}

func (s *PartyService) Get(ctx context.Context, actor, id uuid.UUID) (*Party, error) {
	row, err := s.reader.Parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, row.BusinessID, access.CapabilityRead); err != nil {
		return nil, err
	}
	return partyFromStorage(row), nil
}

func (s *PartyService) Create(ctx context.Context, actor uuid.UUID, input PartyInput) (*Party, error) {
	name, err := requireName("name", input.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, input.BusinessID, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.CreateParty{Create: party.PartyCreate{
		BusinessID: input.BusinessID,
		Name:       name,
		Phone:      input.Phone,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return partyFromStorage(action.Result), nil
}

func (s *PartyService) Update(ctx context.Context, actor, id uuid.UUID, patch PartyPatch) (*Party, error) {
	update := party.PartyUpdate{Phone: patch.Phone}
	if name, ok := patch.Name.Get(); ok {
		name, err := requireName("name", name)
		if err != nil {
			return nil, err
		}
		update.Name.Set(name)
	}
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.UpdateParty{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return partyFromStorage(action.Result), nil
}

func (s *PartyService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteParty{ID: id})
}

func (s *PartyService) authorize(ctx context.Context, actor, id uuid.UUID, capability access.Capability) error {
	row, err := s.reader.Parties.FindByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.resolver.Require(ctx, actor, row.BusinessID, capability)
	return err
}

// PaymentModeService handles how money moved: cash, bank transfer and so on.
type PaymentModeService struct {
	*deps
}

func (s *PaymentModeService) List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*PaymentMode, error) {
	businessIDs, err := s.scope(ctx, actor, businessID)
	if err != nil || len(businessIDs) == 0 {
		return nil, err
	}
	rows, err := s.reader.PaymentModes.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, paymentModeFromStorage), nil
}

func (s *PaymentModeService) Get(ctx context.Context, actor, id uuid.UUID) (*PaymentMode, error) {
	row, err := s.reader.PaymentModes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, row.BusinessID, access.CapabilityRead); err != nil {
		return nil, err
	}
	return paymentModeFromStorage(row), nil
}

func (s *PaymentModeService) Create(ctx context.Context, actor, businessID uuid.UUID, name string) (*PaymentMode, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, actor, businessID, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.CreatePaymentMode{BusinessID: businessID, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return paymentModeFromStorage(action.Result), nil
}

func (s *PaymentModeService) Update(ctx context.Context, actor, id uuid.UUID, name string) (*PaymentMode, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return nil, err
	}

	action := &actions.RenamePaymentMode{ID: id, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return paymentModeFromStorage(action.Result), nil
}

func (s *PaymentModeService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if err := s.authorize(ctx, actor, id, access.CapabilityWrite); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeletePaymentMode{ID: id})
}

func (s *PaymentModeService) authorize(ctx context.Context, actor, id uuid.UUID, capability access.Capability) error {
	row, err := s.reader.PaymentModes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.resolver.Require(ctx, actor, row.BusinessID, capability)
	return err
}
