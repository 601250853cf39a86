package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

const defaultLimit = 20

// Processor runs a write action in its own database transaction and waits for it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Business    *BusinessService
	Cashbook    *CashbookService
	Member      *MemberService
	Category    *CategoryService
	Party       *PartyService
	PaymentMode *PaymentModeService
	Transaction *TransactionService
	Report      *ReportService
}

// NewService creates a new Service reading through reader and writing through processor.
func NewService(reader *storage.Reader, processor Processor) *Service {
	return newService(reader, processor, time.Now)
}

func newService(reader *storage.Reader, processor Processor, now func() time.Time) *Service {
	d := &deps{
		reader:    reader,
		resolver:  access.NewResolver(reader.Businesses, reader.Members),
		processor: processor,
		now:       now,
	}
	return &Service{
		Business:    &BusinessService{d},
		Cashbook:    &CashbookService{d},
		Member:      &MemberService{d},
		Category:    &CategoryService{d},
		Party:       &PartyService{d},
		PaymentMode: &PaymentModeService{d},
		Transaction: &TransactionService{d},
		Report:      &ReportService{d},
	}
}

// deps is shared by every resource service.
type deps struct {
	reader    *storage.Reader
	resolver  *access.Resolver
	processor Processor
	now       func() time.Time
}

func (d *deps) today() civil.Date {
	return civil.DateOf(d.now())
}

// scope returns the businesses a listing covers: just businessID when given (after a read
// check), otherwise every business the actor owns or belongs to.
func (d *deps) scope(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]uuid.UUID, error) {
	if businessID.Valid {
		if _, err := d.resolver.Require(ctx, actor, businessID.UUID, access.CapabilityRead); err != nil {
			return nil, err
		}
		return []uuid.UUID{businessID.UUID}, nil
	}
	return d.resolver.AccessibleBusinessIDs(ctx, actor)
}

// accessibleCashbookIDs lists every cashbook in a business the actor can read.
func (d *deps) accessibleCashbookIDs(ctx context.Context, actor uuid.UUID) ([]uuid.UUID, error) {
	businessIDs, err := d.resolver.AccessibleBusinessIDs(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(businessIDs) == 0 {
		return nil, nil
	}
	rows, err := d.reader.Cashbooks.ListByBusinessIDs(ctx, businessIDs)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Invalid(field, "is required")
	}
	return name, nil
}

// hideMissing turns a missing reference into a validation error on field.
func hideMissing(field string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Invalid(field, "does not exist in this business")
	}
	return err
}
