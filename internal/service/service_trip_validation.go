package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// tripValidationService rejects malformed trip input before the wrapped
// service performs any lookup, upload or write.
type tripValidationService struct {
	inner TripService
}

func NewTripValidationService() TripServiceWrapper {
	return &tripValidationService{}
}

func (v *tripValidationService) Wrap(inner TripService) TripService {
	v.inner = inner
	return v
}

func (v *tripValidationService) List(ctx context.Context, page models.PageRequest) (models.Page[models.Trip], error) {
	return v.inner.List(ctx, page)
}

func (v *tripValidationService) Search(ctx context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error) {
	return v.inner.Search(ctx, keyword, page)
}

func (v *tripValidationService) ListMine(ctx context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error) {
	return v.inner.ListMine(ctx, email, page)
}

func (v *tripValidationService) Get(ctx context.Context, id int64) (models.Trip, error) {
	return v.inner.Get(ctx, id)
}

// Create requires 1..5 photos, each with content.
func (v *tripValidationService) Create(ctx context.Context, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	if err := validateDraft(draft); err != nil {
		return models.Trip{}, err
	}
	if len(photos) == 0 {
		return models.Trip{}, validationError("At least 1 photo is required")
	}
	if err := validatePhotoCount(len(photos)); err != nil {
		return models.Trip{}, err
	}
	for i, photo := range photos {
		if photo.Empty() {
			return models.Trip{}, emptyPhotoError(i)
		}
	}

	return v.inner.Create(ctx, authorEmail, draft, photos)
}

// Update accepts no photos at all. When photos are supplied, at most 5 are
// allowed and each must have content.
func (v *tripValidationService) Update(ctx context.Context, id int64, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	if err := validateDraft(draft); err != nil {
		return models.Trip{}, err
	}
	if err := validatePhotoCount(len(photos)); err != nil {
		return models.Trip{}, err
	}
	for i, photo := range photos {
		if photo.Empty() {
			return models.Trip{}, emptyPhotoError(i)
		}
	}

	return v.inner.Update(ctx, id, authorEmail, draft, photos)
}

func (v *tripValidationService) CreateFromPayload(ctx context.Context, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	if err := validatePayload(payload); err != nil {
		return models.Trip{}, err
	}
	return v.inner.CreateFromPayload(ctx, authorEmail, payload)
}

func (v *tripValidationService) UpdateFromPayload(ctx context.Context, id int64, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	if err := validatePayload(payload); err != nil {
		return models.Trip{}, err
	}
	return v.inner.UpdateFromPayload(ctx, id, authorEmail, payload)
}

func (v *tripValidationService) Delete(ctx context.Context, id int64, actorEmail string) error {
	return v.inner.Delete(ctx, id, actorEmail)
}

func validateDraft(draft models.TripDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return validationError("Title is required")
	}
	if strings.TrimSpace(draft.Location) == "" {
		return validationError("Location is required")
	}
	return nil
}

func validatePayload(payload models.TripPayload) error {
	if err := validateDraft(payload.Draft()); err != nil {
		return err
	}
	if err := validatePhotoCount(len(payload.Photos)); err != nil {
		return err
	}
	for i, photo := range payload.Photos {
		if strings.TrimSpace(photo) == "" {
			return emptyPhotoError(i)
		}
	}
	return nil
}

func validatePhotoCount(n int) error {
	if n > models.MaxTripPhotos {
		return validationError(fmt.Sprintf("Maximum %d photos allowed", models.MaxTripPhotos))
	}
	return nil
}

func emptyPhotoError(i int) error {
	return validationError(fmt.Sprintf("Photo at index %d is empty", i))
}
