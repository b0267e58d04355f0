package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
)

// DBPinger is satisfied by *sql.DB and [store.DB].
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db      DBPinger
	objects store.ObjectStorage
	logger  *logger.Logger
}

func NewHealthService(db DBPinger, objects store.ObjectStorage, logger *logger.Logger) HealthService {
	return &healthService{db: db, objects: objects, logger: logger}
}

// Check pings every dependency and joins their failures.
func (h *healthService) Check(ctx context.Context) error {
	var errs []error
	if err := h.db.PingContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if err := h.objects.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("object storage: %w", err))
	}
	return errors.Join(errs...)
}
