package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/validators"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type accountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &accountValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *accountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *accountValidationService) Register(ctx context.Context, request models.RegisterRequest) error {
	if err := v.check(ctx, request); err != nil {
		return err
	}
	return v.inner.Register(ctx, request)
}

func (v *accountValidationService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	if err := v.check(ctx, request); err != nil {
		return models.LoginResponse{}, err
	}
	return v.inner.Login(ctx, request)
}

func (v *accountValidationService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	return v.inner.Authenticate(ctx, token)
}

// check turns field failures into a validation error carrying them.
func (v *accountValidationService) check(ctx context.Context, request any) error {
	err := v.validator.Validate(ctx, request)
	if err == nil {
		return nil
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		return ValidationFields(fieldErrs)
	}
	return fmt.Errorf("error validating %T: %w", request, err)
}
