// Package httperr maps service errors onto huma responses.
package httperr

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/apperr"
	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/logging"
)

// From converts err into a huma error. Unknown errors become a 500 whose cause is logged
// instead of returned.
func From(ctx context.Context, err error, msg string) error {
	var validation *apperr.ValidationError
	switch {
	case errors.As(err, &validation):
		return huma.NewError(http.StatusBadRequest, validation.Error())
	case errors.Is(err, apperr.ErrPermissionDenied):
		return huma.NewError(http.StatusForbidden, "permission denied")
	case errors.Is(err, apperr.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrConflict):
		return huma.NewError(http.StatusConflict, "conflict", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, "request cancelled")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, msg)
}

// Actor returns the authenticated user of the request.
func Actor(ctx context.Context) (uuid.UUID, error) {
	actor, ok := auth.UserFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return actor, nil
}

// ParseID parses a required UUID field.
func ParseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseOptionalID parses a UUID field that may be empty.
func ParseOptionalID(field, s string) (uuid.NullUUID, error) {
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := ParseID(field, s)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// ParseOptionalIDPtr is ParseOptionalID returning a pointer, as filters take.
func ParseOptionalIDPtr(field, s string) (*uuid.UUID, error) {
	id, err := ParseOptionalID(field, s)
	if err != nil || !id.Valid {
		return nil, err
	}
	return &id.UUID, nil
}

func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

// ParseOptionalDate parses a YYYY-MM-DD field that may be empty.
func ParseOptionalDate(field, s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return &d, nil
}

// Timestamp renders t as RFC3339 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Target resolves the actor and the path id of a single-resource operation.
func Target(ctx context.Context, rawID string) (uuid.UUID, uuid.UUID, error) {
	actor, err := Actor(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := ParseID("id", rawID)
	return actor, id, err
}
