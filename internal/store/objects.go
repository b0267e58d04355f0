package store

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

const defaultContentType = "application/octet-stream"

// NewObjectStorage builds the backend selected by cfg.Backend.
func NewObjectStorage(ctx context.Context, cfg config.Objects, logger *logger.Logger) (ObjectStorage, error) {
	switch cfg.Backend {
	case config.ObjectBackendLocal:
		return NewLocalObjectStorage(cfg, logger)
	case config.ObjectBackendMinio:
		return NewMinioObjectStorage(ctx, cfg, logger)
	case config.ObjectBackendSupabase:
		return NewSupabaseObjectStorage(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectBackend, cfg.Backend)
	}
}

// validObjectKey reports whether key is a single path element.
func validObjectKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && path.Base(key) == key
}

func contentTypeOrDefault(contentType string) string {
	if contentType == "" {
		return defaultContentType
	}
	return contentType
}
