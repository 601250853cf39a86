package storage

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationStatus reports the schema version before and after Migrate.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate applies every pending migration found at sourceURL, e.g. "file://migrations".
func Migrate(db *sql.DB, sourceURL string) (*MigrationStatus, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return nil, err
	}

	status := &MigrationStatus{}
	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return nil, err
	}
	return status, nil
}
