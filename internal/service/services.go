package service

import (
	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
)

type Services struct {
	TokenService   TokenService
	AccountService AccountService
	FileService    FileService
	TripService    TripService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	fileService := NewFileService(storages.ObjectStorage, utils.NewObjectNamer(), logger)
	tripService := NewTripValidationService().Wrap(
		NewTripService(storages.TripRepository, storages.UserRepository, fileService, logger),
	)

	return &Services{
		TokenService:   tokenService,
		AccountService: NewAccountValidationService().Wrap(
			NewAccountService(storages.UserRepository, tokenService, cfg.App, logger),
		),
		FileService:    fileService,
		TripService:    tripService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.DB, storages.ObjectStorage, logger),
	}, nil
}
