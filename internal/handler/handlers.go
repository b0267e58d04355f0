package handler

import (
	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-trip-keeper/internal/handler/http"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing forwards the dependency health to the gRPC health endpoint,
// if one is enabled.
func (h *Handlers) SetServing(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(serving)
	}
}
