package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
)

// BusinessService handles businesses. Only the owner sees or changes a business.
type BusinessService struct {
	*deps
}

func (s *BusinessService) List(ctx context.Context, actor uuid.UUID) ([]*Business, error) {
	rows, err := s.reader.Businesses.ListByOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	return convertAll(rows, businessFromStorage), nil
}

func (s *BusinessService) Create(ctx context.Context, actor uuid.UUID, name string) (*Business, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateBusiness{OwnerID: actor, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return businessFromStorage(action.Result), nil
}

func (s *BusinessService) Get(ctx context.Context, actor, id uuid.UUID) (*Business, error) {
	row, err := s.reader.Businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.OwnerID != actor {
		return nil, apperr.ErrNotFound
	}
	return businessFromStorage(row), nil
}

func (s *BusinessService) Update(ctx context.Context, actor, id uuid.UUID, name string) (*Business, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	action := &actions.UpdateBusiness{ID: id, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return businessFromStorage(action.Result), nil
}

// Delete removes the business and everything it owns.
func (s *BusinessService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteBusiness{ID: id})
}
