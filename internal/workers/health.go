// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
)

const defaultHealthCheckInterval = 30 * time.Second

// HealthWorker periodically probes the database and object storage and
// publishes the result to a [StatusReporter].
type HealthWorker struct {
	health   service.HealthService
	reporter StatusReporter
	interval time.Duration
	logger   *logger.Logger

	// healthy is the last published status, nil before the first probe.
	healthy *bool
}

func NewHealthWorker(health service.HealthService, reporter StatusReporter, cfg config.Workers, logger *logger.Logger) *HealthWorker {
	interval := cfg.HealthCheckInterval
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}

	return &HealthWorker{
		health:   health,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (w *HealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.probe(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("health worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *HealthWorker) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.health.Check(probeCtx)
	if ctx.Err() != nil {
		// stopping, the result says nothing about the dependencies
		return
	}

	healthy := err == nil
	if w.healthy == nil || *w.healthy != healthy {
		if healthy {
			w.logger.Info().Msg("dependencies healthy")
		} else {
			w.logger.Warn().Err(err).Msg("dependencies unhealthy")
		}
	}

	w.healthy = &healthy
	w.reporter.SetServing(healthy)
}
