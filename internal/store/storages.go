package store

import (
	"context"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is constructed once at startup and handed to the service
// layer.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
	BookRepository       BookRepository

	db *DB
}

// NewStorages connects to PostgreSQL and wires all repositories over the
// shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
		BookRepository:       NewBookRepository(db, log),
		db:                   db,
	}, nil
}

// DB exposes the underlying connection for migrations and shutdown.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
