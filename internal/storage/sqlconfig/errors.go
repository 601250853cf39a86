package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/carson-networks/cashbook-server/internal/apperr"
)

// Translate maps driver errors onto apperr kinds at the storage boundary.
// Errors it does not recognise are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation", "foreign_key_violation":
			return fmt.Errorf("%w: %s", apperr.ErrConflict, pqErr.Constraint)
		case "check_violation", "invalid_text_representation":
			return &apperr.ValidationError{Field: pqErr.Column, Message: pqErr.Message}
		}
	}
	return err
}
