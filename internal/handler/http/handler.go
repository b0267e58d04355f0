package http

import (
	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
)

// defaultMaxUploadSize applies when the configuration leaves the multipart
// body limit unset.
const defaultMaxUploadSize int64 = 32 << 20

type Handler struct {
	services *service.Services

	// maxUploadSize caps multipart request bodies.
	maxUploadSize int64

	// allowedOrigins is the CORS allow-list.
	allowedOrigins []string

	metrics *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  maxUploadSize,
		allowedOrigins: cfg.AllowedOrigins,
		metrics:        newHTTPMetrics(),
		logger:         logger,
	}
}
