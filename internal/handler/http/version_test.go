package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	services := newTestServices()
	services.AppInfoService = &fakeAppInfoService{version: "v1.4.0"}

	rr := serve(newRouterHandler(services, config.Server{}), httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.0", rr.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{
			name:       "database unreachable",
			err:        errors.New("database: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","error":"database: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.HealthService = &fakeHealthService{err: tt.err}

			rr := serve(newRouterHandler(services, config.Server{}), httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
