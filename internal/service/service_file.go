package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// ObjectNamer derives an object key from a client file name.
type ObjectNamer interface {
	Name(original string) string
}

type fileService struct {
	objects store.ObjectStorage
	namer   ObjectNamer
	logger  *logger.Logger
}

func NewFileService(objects store.ObjectStorage, namer ObjectNamer, logger *logger.Logger) FileService {
	return &fileService{
		objects: objects,
		namer:   namer,
		logger:  logger,
	}
}

func (f *fileService) UploadOne(ctx context.Context, upload models.Upload) (string, error) {
	if upload.Empty() {
		return "", validationError("File is empty")
	}

	stored, err := f.Store(ctx, []models.Upload{upload})
	if err != nil {
		return "", err
	}
	return stored[0].URL, nil
}

func (f *fileService) UploadMany(ctx context.Context, uploads []models.Upload) ([]string, error) {
	switch {
	case len(uploads) == 0:
		return nil, validationError("At least 1 file is required")
	case len(uploads) > models.MaxTripPhotos:
		return nil, validationError(fmt.Sprintf("Maximum %d files allowed", models.MaxTripPhotos))
	}
	for i, upload := range uploads {
		if upload.Empty() {
			return nil, validationError(fmt.Sprintf("File at index %d is empty", i))
		}
	}

	stored, err := f.Store(ctx, uploads)
	if err != nil {
		return nil, err
	}
	return urlsOf(stored), nil
}

// Store uploads one file at a time; a failure on file i leaves files after
// i untouched and removes files before it.
func (f *fileService) Store(ctx context.Context, uploads []models.Upload) ([]models.StoredObject, error) {
	log := logger.FromContext(ctx)

	stored := make([]models.StoredObject, 0, len(uploads))
	for i, upload := range uploads {
		object, err := f.objects.Put(ctx, f.namer.Name(upload.Filename), upload)
		if err != nil {
			log.Err(err).Int("index", i).Str("filename", upload.Filename).Msg("upload failed, discarding stored files")
			f.Discard(ctx, stored)
			return nil, newError(KindUploadFailed, "Failed to upload files", fmt.Errorf("file at index %d: %w", i, err))
		}
		stored = append(stored, object)
	}

	return stored, nil
}

// Discard runs detached from ctx cancellation so a dropped client does not
// leave orphans behind.
func (f *fileService) Discard(ctx context.Context, objects []models.StoredObject) {
	if len(objects) == 0 {
		return
	}

	log := logger.FromContext(ctx)
	cleanupCtx := context.WithoutCancel(ctx)
	for _, object := range objects {
		if err := f.objects.Remove(cleanupCtx, object.Key); err != nil {
			log.Warn().Err(err).Str("key", object.Key).Msg("failed to remove stored object during cleanup")
		}
	}
}

func (f *fileService) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	reader, ok := f.objects.(store.ObjectReader)
	if !ok {
		return nil, newError(KindNotFound, "File not found", nil)
	}

	file, err := reader.Open(ctx, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, newError(KindNotFound, "File not found", err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("error opening stored file")
		return nil, newError(KindPersistenceFailed, "Failed to read file", err)
	}
	return file, nil
}

func urlsOf(objects []models.StoredObject) []string {
	urls := make([]string, 0, len(objects))
	for _, object := range objects {
		urls = append(urls, object.URL)
	}
	return urls
}
