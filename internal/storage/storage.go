package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbook-server/internal/config"
)

type Storage struct {
	DB *sql.DB
	db bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened database handle.
func FromDB(db *sql.DB) *Storage {
	return &Storage{
		DB: db,
		db: bob.NewDB(db),
	}
}

// Read returns readers that run each query on its own connection.
func (s *Storage) Read() *Reader {
	return NewReader(s.db)
}

// Write opens a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
