package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/category"
)

// DefaultCategories are seeded with type BOTH so they fit either direction.
var DefaultCategories = []category.CategoryCreate{
	{Name: "Sales", Type: "BOTH"},
	{Name: "Purchase", Type: "BOTH"},
	{Name: "Salary", Type: "BOTH"},
	{Name: "Rent", Type: "BOTH"},
	{Name: "Utilities", Type: "BOTH"},
	{Name: "Transport", Type: "BOTH"},
	{Name: "Office Supplies", Type: "BOTH"},
	{Name: "Marketing", Type: "BOTH"},
	{Name: "Maintenance", Type: "BOTH"},
	{Name: "Other Income", Type: "BOTH"},
	{Name: "Other Expense", Type: "BOTH"},
}

var DefaultPaymentModes = []string{"Cash", "Bank Transfer", "UPI", "Card", "Cheque"}

// SeedDefaults gives a business the standard categories and payment modes. Running it
// again only adds what is missing.
type SeedDefaults struct {
	BusinessID uuid.UUID

	CategoriesAdded   int
	PaymentModesAdded int
}

func (s *SeedDefaults) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Businesses.FindByID(ctx, s.BusinessID); err != nil {
		return err
	}

	added, err := writer.Categories.InsertMissing(ctx, s.BusinessID, DefaultCategories)
	if err != nil {
		return err
	}
	s.CategoriesAdded = added

	added, err = writer.PaymentModes.InsertMissing(ctx, s.BusinessID, DefaultPaymentModes)
	if err != nil {
		return err
	}
	s.PaymentModesAdded = added
	return nil
}
