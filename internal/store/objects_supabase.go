package store

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// supabaseObjectStorage talks to the Supabase Storage REST API. The secret
// key must be a service role key; anon keys are rejected by bucket RLS.
type supabaseObjectStorage struct {
	client    *utils.HTTPClient
	endpoint  string
	bucket    string
	secretKey string
	logger    *logger.Logger
}

// NewSupabaseObjectStorage returns a storage rooted at cfg.Endpoint (the
// project URL).
func NewSupabaseObjectStorage(cfg config.Objects, logger *logger.Logger) ObjectStorage {
	logger.Debug().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("creating supabase object storage")

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	return &supabaseObjectStorage{
		client:    utils.NewHTTPClient(endpoint, 0),
		endpoint:  endpoint,
		bucket:    cfg.Bucket,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

func (s *supabaseObjectStorage) Put(ctx context.Context, key string, upload models.Upload) (models.StoredObject, error) {
	log := logger.FromContext(ctx)

	if !validObjectKey(key) {
		return models.StoredObject{}, fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	if upload.Missing() {
		return models.StoredObject{}, fmt.Errorf("%w: no content", ErrObjectUpload)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetHeader("Content-Type", contentTypeOrDefault(upload.ContentType)).
		SetHeader("x-upsert", "true").
		SetBody(upload.Content).
		SetPathParams(map[string]string{"bucket": s.bucket, "key": key}).
		Put("/storage/v1/object/{bucket}/{key}")
	if err != nil {
		log.Err(err).Str("func", "*supabaseObjectStorage.Put").Str("key", key).Msg("error uploading object")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}
	if resp.IsError() {
		err = statusError(resp.StatusCode(), resp.String())
		log.Err(err).Str("func", "*supabaseObjectStorage.Put").Str("key", key).Msg("supabase rejected upload")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}

	return models.StoredObject{
		Key: key,
		URL: s.endpoint + "/storage/v1/object/public/" + s.bucket + "/" + key,
	}, nil
}

func (s *supabaseObjectStorage) Remove(ctx context.Context, key string) error {
	if !validObjectKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetPathParams(map[string]string{"bucket": s.bucket, "key": key}).
		Delete("/storage/v1/object/{bucket}/{key}")
	if err == nil && resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		err = statusError(resp.StatusCode(), resp.String())
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*supabaseObjectStorage.Remove").Str("key", key).Msg("error removing object")
		return fmt.Errorf("%w: %w", ErrObjectDelete, err)
	}
	return nil
}

func (s *supabaseObjectStorage) Ping(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetPathParam("bucket", s.bucket).
		Get("/storage/v1/bucket/{bucket}")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return statusError(resp.StatusCode(), resp.String())
	}
	return nil
}

func statusError(status int, body string) error {
	msg := strings.TrimSpace(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	if status == http.StatusForbidden || strings.Contains(msg, "row-level security") {
		msg += " (check that the service role key is used and the bucket policies allow writes)"
	}
	return fmt.Errorf("supabase storage responded %d: %s", status, msg)
}
