package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultMinioRegion = "us-east-1"

type minioObjectStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewMinioObjectStorage connects to an S3-compatible endpoint and creates
// the bucket when it does not exist yet.
func NewMinioObjectStorage(ctx context.Context, cfg config.Objects, logger *logger.Logger) (ObjectStorage, error) {
	logger.Debug().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("creating minio object storage")

	region := cfg.Region
	if region == "" {
		region = defaultMinioRegion
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}

	return &minioObjectStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

func (s *minioObjectStorage) Put(ctx context.Context, key string, upload models.Upload) (models.StoredObject, error) {
	log := logger.FromContext(ctx)

	if !validObjectKey(key) {
		return models.StoredObject{}, fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	if upload.Missing() {
		return models.StoredObject{}, fmt.Errorf("%w: no content", ErrObjectUpload)
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, upload.Content, upload.Size, minio.PutObjectOptions{
		ContentType: contentTypeOrDefault(upload.ContentType),
		UserMetadata: map[string]string{
			"original-filename": upload.Filename,
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*minioObjectStorage.Put").Str("key", key).Msg("error uploading object")
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrObjectUpload, err)
	}

	return models.StoredObject{Key: key, URL: s.publicURL + "/" + s.bucket + "/" + key}, nil
}

func (s *minioObjectStorage) Remove(ctx context.Context, key string) error {
	if !validObjectKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioObjectStorage.Remove").Str("key", key).Msg("error removing object")
		return fmt.Errorf("%w: %w", ErrObjectDelete, err)
	}
	return nil
}

func (s *minioObjectStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
