package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/access"
	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage/cashbook"
	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	*deps
}

// List returns a newest-first page of the running-balance ledger over every transaction
// the actor can read that matches query. Balances only cover the filtered set.
func (s *TransactionService) List(ctx context.Context, actor uuid.UUID, query TransactionQuery, cursor *TransactionCursor) (*TransactionPage, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	rows, err := s.matching(ctx, actor, query, maxCreationTime)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &TransactionPage{}, nil
	}

	var annotated ledger.Ledger[Transaction]
	err = logging.Timed(ctx, "ledgerMs", func() error {
		annotated = ledger.Annotate(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}

	page, more := ledger.Page(annotated.Rows, offset, limit)
	result := &TransactionPage{Rows: page, Totals: annotated.Totals}
	if more {
		snapshot := latestCreation(rows)
		if maxCreationTime != nil {
			snapshot = *maxCreationTime
		}
		result.Next = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: snapshot,
		}
	}
	return result, nil
}

// Summary computes the totals of the filtered set without the rows. A cashbook is required.
func (s *TransactionService) Summary(ctx context.Context, actor uuid.UUID, query TransactionQuery) (ledger.Totals, error) {
	if query.Filter.CashbookID == nil {
		return ledger.Totals{}, apperr.Invalid("cashbook", "is required")
	}
	if _, _, err := s.authorizeCashbook(ctx, actor, *query.Filter.CashbookID, access.CapabilityRead); err != nil {
		return ledger.Totals{}, err
	}

	rows, err := s.matching(ctx, actor, query, nil)
	if err != nil {
		return ledger.Totals{}, err
	}
	return ledger.Summarize(rows), nil
}

func (s *TransactionService) Get(ctx context.Context, actor, id uuid.UUID) (*Transaction, error) {
	row, err := s.reader.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizeCashbook(ctx, actor, row.CashbookID, access.CapabilityRead); err != nil {
		return nil, err
	}
	converted := transactionFromStorage(row)
	return &converted, nil
}

// Create records a transaction dated now. Category and payment mode are mandatory.
func (s *TransactionService) Create(ctx context.Context, actor uuid.UUID, input TransactionInput) (*Transaction, error) {
	direction, err := parseDirection(input.Type)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if !input.CategoryID.Valid {
		return nil, apperr.Invalid("category", "is required")
	}
	if !input.PaymentModeID.Valid {
		return nil, apperr.Invalid("payment_mode", "is required")
	}

	book, _, err := s.authorizeCashbook(ctx, actor, input.CashbookID, access.CapabilityWrite)
	if err != nil {
		return nil, err
	}
	refs := references{
		category:    input.CategoryID,
		party:       input.PartyID,
		paymentMode: input.PaymentModeID,
	}
	if err := s.checkReferences(ctx, book, refs); err != nil {
		return nil, err
	}

	now := s.now()
	action := &actions.CreateTransaction{Create: transaction.TransactionCreate{
		CashbookID:      book.ID,
		Type:            string(direction),
		Amount:          input.Amount,
		Remark:          input.Remark,
		CategoryID:      input.CategoryID.UUID,
		PartyID:         input.PartyID,
		PaymentModeID:   input.PaymentModeID.UUID,
		CreatedBy:       actor,
		TransactionDate: civil.DateOf(now),
		TransactionTime: civil.TimeOf(now.Truncate(time.Second)),
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	converted := transactionFromStorage(action.Result)
	return &converted, nil
}

// Update changes the set fields. The transaction date and time never change.
func (s *TransactionService) Update(ctx context.Context, actor, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	update := transaction.TransactionUpdate{
		Remark:  patch.Remark,
		PartyID: patch.PartyID,
	}
	if v, ok := patch.Type.Get(); ok {
		direction, err := parseDirection(v)
		if err != nil {
			return nil, err
		}
		update.Type.Set(string(direction))
	}
	if v, ok := patch.Amount.Get(); ok {
		if err := validateAmount(v); err != nil {
			return nil, err
		}
		update.Amount.Set(v)
	}

	row, err := s.reader.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	book, _, err := s.authorizeCashbook(ctx, actor, row.CashbookID, access.CapabilityWrite)
	if err != nil {
		return nil, err
	}

	var refs references
	if v, ok := patch.CategoryID.Get(); ok {
		refs.category = uuid.NullUUID{UUID: v, Valid: true}
		update.CategoryID.Set(v)
	}
	if v, ok := patch.PaymentModeID.Get(); ok {
		refs.paymentMode = uuid.NullUUID{UUID: v, Valid: true}
		update.PaymentModeID.Set(v)
	}
	if v, ok := patch.PartyID.Get(); ok {
		refs.party = uuid.NullUUID{UUID: v, Valid: true}
	}
	if err := s.checkReferences(ctx, book, refs); err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	converted := transactionFromStorage(action.Result)
	return &converted, nil
}

// Delete needs the delete capability: editors may record and correct but not remove.
func (s *TransactionService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	row, err := s.reader.Transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, _, err := s.authorizeCashbook(ctx, actor, row.CashbookID, access.CapabilityDelete); err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// matching loads the filtered working set in ascending ledger order.
func (s *TransactionService) matching(ctx context.Context, actor uuid.UUID, query TransactionQuery, maxCreationTime *time.Time) ([]Transaction, error) {
	filter := query.Filter
	if query.MemberID != "" {
		createdBy, ok, err := s.memberCreator(ctx, actor, query.MemberID)
		if err != nil {
			return nil, err
		}
		if !ok || (filter.CreatedBy != nil && *filter.CreatedBy != createdBy) {
			return nil, nil
		}
		filter.CreatedBy = &createdBy
	}

	cashbookIDs, err := s.accessibleCashbookIDs(ctx, actor)
	if err != nil || len(cashbookIDs) == 0 {
		return nil, err
	}

	rows, err := s.reader.Transactions.List(ctx, &transaction.ListQuery{
		CashbookIDs:  cashbookIDs,
		Filter:       filter,
		Window:       filter.Window(s.today()),
		MaxCreatedAt: maxCreationTime,
	})
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

// memberCreator resolves a member filter to the member's user. ok is false when the id is
// malformed, unknown or outside the actor's businesses.
func (s *TransactionService) memberCreator(ctx context.Context, actor uuid.UUID, raw string) (uuid.UUID, bool, error) {
	memberID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	row, err := s.reader.Members.FindByID(ctx, memberID)
	if errors.Is(err, apperr.ErrNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	businessIDs, err := s.resolver.AccessibleBusinessIDs(ctx, actor)
	if err != nil {
		return uuid.Nil, false, err
	}
	if !slices.Contains(businessIDs, row.BusinessID) {
		return uuid.Nil, false, nil
	}
	return row.UserID, true, nil
}

type references struct {
	category    uuid.NullUUID
	party       uuid.NullUUID
	paymentMode uuid.NullUUID
}

// checkReferences verifies each set reference belongs to the cashbook's business.
func (s *TransactionService) checkReferences(ctx context.Context, book *cashbook.Cashbook, refs references) error {
	if refs.category.Valid {
		row, err := s.reader.Categories.FindByID(ctx, refs.category.UUID)
		if err != nil {
			return hideMissing("category", err)
		}
		if row.BusinessID != book.BusinessID {
			return apperr.Invalid("category", "does not exist in this business")
		}
	}
	if refs.party.Valid {
		row, err := s.reader.Parties.FindByID(ctx, refs.party.UUID)
		if err != nil {
			return hideMissing("party", err)
		}
		if row.BusinessID != book.BusinessID {
			return apperr.Invalid("party", "does not exist in this business")
		}
	}
	if refs.paymentMode.Valid {
		row, err := s.reader.PaymentModes.FindByID(ctx, refs.paymentMode.UUID)
		if err != nil {
			return hideMissing("payment_mode", err)
		}
		if row.BusinessID != book.BusinessID {
			return apperr.Invalid("payment_mode", "does not exist in this business")
		}
	}
	return nil
}

func parseDirection(s string) (ledger.Direction, error) {
	direction, err := ledger.ParseDirection(s)
	if err != nil {
		return "", apperr.Invalid("type", "must be IN or OUT")
	}
	return direction, nil
}

// validateAmount accepts positive amounts with at most two decimal places.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperr.Invalid("amount", "must be greater than zero")
	}
	if !amount.Equal(amount.Round(2)) {
		return apperr.Invalid("amount", "must have at most two decimal places")
	}
	return nil
}

func latestCreation(rows []Transaction) time.Time {
	var latest time.Time
	for _, row := range rows {
		if row.CreatedAt.After(latest) {
			latest = row.CreatedAt
		}
	}
	return latest
}
