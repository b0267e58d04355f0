package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	dbErr := errors.New("db down")
	objErr := errors.New("bucket down")

	tests := []struct {
		name   string
		dbErr  error
		objErr error
	}{
		{name: "healthy"},
		{name: "database down", dbErr: dbErr},
		{name: "objects down", objErr: objErr},
		{name: "both down", dbErr: dbErr, objErr: objErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			objects := mock.NewMockObjectStorage(ctrl)
			objects.EXPECT().Ping(gomock.Any()).Return(tt.objErr)

			svc := NewHealthService(pingerFunc(func(context.Context) error { return tt.dbErr }), objects, logger.Nop())
			err := svc.Check(context.Background())

			if tt.dbErr == nil && tt.objErr == nil {
				assert.NoError(t, err)
				return
			}
			if tt.dbErr != nil {
				assert.ErrorIs(t, err, tt.dbErr)
			}
			if tt.objErr != nil {
				assert.ErrorIs(t, err, tt.objErr)
			}
		})
	}
}
