package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingReporter keeps every published status.
type recordingReporter struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *recordingReporter) SetServing(serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, serving)
}

func (r *recordingReporter) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

func TestNewHealthWorker_DefaultInterval(t *testing.T) {
	w := NewHealthWorker(nil, &recordingReporter{}, config.Workers{}, logger.Nop())
	assert.Equal(t, defaultHealthCheckInterval, w.interval)

	w = NewHealthWorker(nil, &recordingReporter{}, config.Workers{HealthCheckInterval: time.Minute}, logger.Nop())
	assert.Equal(t, time.Minute, w.interval)
}

func TestHealthWorker_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	health := mock.NewMockHealthService(ctrl)
	reporter := &recordingReporter{}
	w := NewHealthWorker(health, reporter, config.Workers{HealthCheckInterval: time.Second}, logger.Nop())

	gomock.InOrder(
		health.EXPECT().Check(gomock.Any()).Return(nil),
		health.EXPECT().Check(gomock.Any()).Return(errors.New("database: connection refused")),
		health.EXPECT().Check(gomock.Any()).Return(nil),
	)

	ctx := context.Background()
	w.probe(ctx)
	w.probe(ctx)
	w.probe(ctx)

	assert.Equal(t, []bool{true, false, true}, reporter.snapshot())
}

func TestHealthWorker_ProbeBoundedByInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	health := mock.NewMockHealthService(ctrl)
	w := NewHealthWorker(health, &recordingReporter{}, config.Workers{HealthCheckInterval: 250 * time.Millisecond}, logger.Nop())

	health.EXPECT().Check(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 100*time.Millisecond)
		return nil
	})

	w.probe(context.Background())
}

func TestHealthWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	health := mock.NewMockHealthService(ctrl)
	reporter := &recordingReporter{}
	w := NewHealthWorker(health, reporter, config.Workers{HealthCheckInterval: 10 * time.Millisecond}, logger.Nop())

	health.EXPECT().Check(gomock.Any()).Return(nil).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(reporter.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHealthWorker_CancelledProbeIsNotPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	health := mock.NewMockHealthService(ctrl)
	reporter := &recordingReporter{}
	w := NewHealthWorker(health, reporter, config.Workers{HealthCheckInterval: time.Second}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	health.EXPECT().Check(gomock.Any()).DoAndReturn(func(probeCtx context.Context) error {
		cancel()
		return probeCtx.Err()
	})

	w.probe(ctx)

	assert.Empty(t, reporter.snapshot())
}
