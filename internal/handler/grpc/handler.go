package grpc

import (
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service name reported by the health endpoint next to
// the overall ("") status.
const ServiceName = "trip-keeper"

// Handler is the root gRPC transport handler.
//
// It serves grpc.health.v1.Health. Status starts as NOT_SERVING and is
// switched by [Handler.SetServing], normally from the health worker.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status is NOT_SERVING
// until the first successful probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips the reported status of both the overall server and
// [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown reports NOT_SERVING permanently; later SetServing calls are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
