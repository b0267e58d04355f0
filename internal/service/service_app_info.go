package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves the configured build version. A blank version is
// a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	log.Debug().Str("version", version).Msg("app info service ready")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
