// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

const minTokenSignKeyLength = 32

// validate checks that the merged [StructuredConfig] is usable before any
// component is constructed from it.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d..%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if err := cfg.Storage.Objects.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return fmt.Errorf("%w: health check interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (o Objects) validate() error {
	if o.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidObjectStorageConfigs)
	}

	switch o.Backend {
	case ObjectBackendLocal:
		if o.LocalDir == "" || o.PublicURL == "" {
			return fmt.Errorf("%w: local backend needs a directory and a public URL", ErrInvalidObjectStorageConfigs)
		}
	case ObjectBackendMinio:
		if o.Endpoint == "" || o.AccessKey == "" || o.SecretKey == "" {
			return fmt.Errorf("%w: minio backend needs endpoint and credentials", ErrInvalidObjectStorageConfigs)
		}
	case ObjectBackendSupabase:
		if o.SecretKey == "" {
			return fmt.Errorf("%w: supabase backend needs a service key", ErrInvalidObjectStorageConfigs)
		}
		if u, err := url.Parse(o.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: supabase endpoint must be an absolute URL", ErrInvalidObjectStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidObjectStorageConfigs, o.Backend)
	}

	return nil
}
