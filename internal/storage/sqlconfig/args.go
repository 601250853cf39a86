package sqlconfig

import (
	"database/sql"

	"github.com/carson-networks/cashbook-server/internal/apperr"
)

// Args converts a typed slice into query arguments for psql.Arg.
func Args[T any](values []T) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// ExpectOne checks that an update or delete touched a row. Zero rows is ErrNotFound.
func ExpectOne(result sql.Result, err error) error {
	if err != nil {
		return Translate(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
