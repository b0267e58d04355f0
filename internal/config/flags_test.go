package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    NetAddress
		expectError bool
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expected: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname instead of ip", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-d", "postgres://localhost/trips",
		"-c", "/etc/trips.json",
		"-token-sign-key", "flag-secret",
		"-token-issuer", "flag-issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-objects", "minio",
		"-objects-endpoint", "minio:9000",
		"-objects-bucket", "photos",
		"-upload-dir", "/srv/uploads",
		"-log-level", "error",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/trips", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/trips.json", cfg.JSONFilePath)
	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "minio", cfg.Storage.Objects.Backend)
	assert.Equal(t, "minio:9000", cfg.Storage.Objects.Endpoint)
	assert.Equal(t, "photos", cfg.Storage.Objects.Bucket)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Objects.LocalDir)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid address", args: []string{"-a", "not-an-address"}},
		{name: "invalid duration", args: []string{"-token-duration", "soon"}},
		{name: "unknown flag", args: []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
