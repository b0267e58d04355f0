package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// LocalObjectStorage keeps uploads in a directory on disk. Files are served
// back by the HTTP layer under /files/{key}, so URLs are built from the
// configured public base URL.
type LocalObjectStorage struct {
	dir       string
	publicURL string
	logger    *logger.Logger
}

// NewLocalObjectStorage creates cfg.LocalDir if needed.
func NewLocalObjectStorage(cfg config.Objects, logger *logger.Logger) (*LocalObjectStorage, error) {
	logger.Debug().Str("dir", cfg.LocalDir).Msg("creating local object storage")

	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	return &LocalObjectStorage{
		dir:       cfg.LocalDir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Put writes the upload to a temporary file and renames it into place, so a
// failed copy never leaves a partial object behind.
func (s *LocalObjectStorage) Put(ctx context.Context, key string, upload models.Upload) (models.StoredObject, error) {
	log := logger.FromContext(ctx)

	if !validObjectKey(key) {
		return models.StoredObject{}, fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	if upload.Missing() {
		return models.StoredObject{}, fmt.Errorf("%w: no content", ErrObjectUpload)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*LocalObjectStorage.Put").Msg("error creating temp file")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, upload.Content)
	closeErr := tmp.Close()
	if err = errors.Join(copyErr, closeErr, ctx.Err()); err != nil {
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "*LocalObjectStorage.Put").Str("key", key).Msg("error writing object")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}

	if err = os.Rename(tmpName, filepath.Join(s.dir, key)); err != nil {
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "*LocalObjectStorage.Put").Str("key", key).Msg("error moving object into place")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}

	return models.StoredObject{Key: key, URL: s.publicURL + "/files/" + key}, nil
}

// Remove deletes the file. A missing file is not an error.
func (s *LocalObjectStorage) Remove(ctx context.Context, key string) error {
	if !validObjectKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*LocalObjectStorage.Remove").Str("key", key).Msg("error removing object")
		return fmt.Errorf("%w: %w", ErrObjectDelete, err)
	}
	return nil
}

// Open returns the stored file for key. Missing files yield an error
// matching [os.ErrNotExist].
func (s *LocalObjectStorage) Open(_ context.Context, key string) (io.ReadSeekCloser, error) {
	if !validObjectKey(key) || strings.HasPrefix(key, ".upload-") {
		return nil, fmt.Errorf("%w: %q", os.ErrNotExist, key)
	}
	return os.Open(filepath.Join(s.dir, key))
}

func (s *LocalObjectStorage) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}
