package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
)

// Storages aggregates all repositories backed by the shared MongoDB
// connection.
type Storages struct {
	UserRepository    UserRepository
	ThoughtRepository ThoughtRepository

	db *DB
}

// NewStorages connects to the document store, ensures the unique indexes the
// data model relies on, and wires all repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating mongodb connection: %w", err)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("error ensuring indexes: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ThoughtRepository: NewThoughtRepository(db, logger),
		db:                db,
	}, nil
}

// Close disconnects the shared database connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
