package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics_ReusesRegisteredCollectors(t *testing.T) {
	first := newHTTPMetrics()
	second := newHTTPMetrics()

	assert.Same(t, first.requestTotal, second.requestTotal)
	assert.Same(t, first.requestLatency, second.requestLatency)
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	services := newTestServices()
	h := newRouterHandler(services, config.Server{})

	counter := h.metrics.requestTotal.WithLabelValues(http.MethodGet, "/api/trips/{id}", "400")
	before := testutil.ToFloat64(counter)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/trips/not-a-number", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestWithMetrics_Unmatched(t *testing.T) {
	h := newRouterHandler(newTestServices(), config.Server{})

	counter := h.metrics.requestTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	serve(h, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsEndpoint(t *testing.T) {
	h := newRouterHandler(newTestServices(), config.Server{})
	serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "trip_keeper_http_requests_total")
}
