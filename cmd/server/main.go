package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/handler"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/server"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/internal/workers"
	"github.com/MKhiriev/go-trip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("trip-keeper-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	// a version baked in at build time wins over configuration
	cfg.App.Version = buildInfo.VersionOr(cfg.App.Version)

	log := logger.NewLogger("trip-keeper-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("objects_backend", cfg.Storage.Objects.Backend).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewHealthWorker(services.HealthService, handlers, cfg.Workers, log),
	)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Go(func() { backgroundWorkers.Run(workersCtx) })

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stopWorkers()
	wg.Wait()
}
