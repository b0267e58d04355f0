package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

// Storages groups every persistence backend the services depend on.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	TripRepository TripRepository
	ObjectStorage  ObjectStorage
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// configured object storage.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info().Msg("database migrations applied")

	objects, err := NewObjectStorage(ctx, cfg.Objects, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating object storage: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, logger),
		TripRepository: NewTripRepository(db, logger),
		ObjectStorage:  objects,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
