package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h on an in-memory listener and returns a client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestHandler_SetServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	h.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	h.SetServing(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestHandler_ShutdownIsFinal(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	h.SetServing(true)
	h.Shutdown()
	h.SetServing(true)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHandler_UnknownService(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "billing"})
	assert.Error(t, err)
}
