// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// tripService orchestrates trip reads and writes. Input shape (required
// fields, photo counts) is checked by [tripValidationService] before calls
// reach this type; here only existence and ownership are enforced.
type tripService struct {
	trips  store.TripRepository
	users  store.UserRepository
	files  FileService
	logger *logger.Logger
}

func NewTripService(trips store.TripRepository, users store.UserRepository, files FileService, logger *logger.Logger) TripService {
	return &tripService{
		trips:  trips,
		users:  users,
		files:  files,
		logger: logger,
	}
}

func (s *tripService) List(ctx context.Context, page models.PageRequest) (models.Page[models.Trip], error) {
	return s.list(ctx, models.TripFilter{}, page)
}

// Search falls back to List for a blank keyword.
func (s *tripService) Search(ctx context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error) {
	return s.list(ctx, models.TripFilter{Keyword: strings.TrimSpace(keyword)}, page)
}

func (s *tripService) ListMine(ctx context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return models.Page[models.Trip]{}, err
	}

	return s.list(ctx, models.TripFilter{AuthorID: user.ID}, page)
}

func (s *tripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	trip, err := s.trips.GetTripByID(ctx, id)
	if err != nil {
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to load trip")
	}

	return trip, nil
}

// Create uploads every photo, then writes the trip. When the write fails
// the fresh uploads are discarded.
func (s *tripService) Create(ctx context.Context, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	author, err := s.resolveUser(ctx, authorEmail)
	if err != nil {
		return models.Trip{}, err
	}

	stored, err := s.files.Store(ctx, photos)
	if err != nil {
		return models.Trip{}, photoUploadError(err)
	}

	trip := models.Trip{Photos: urlsOf(stored), AuthorID: author.ID}
	draft.Apply(&trip)

	created, err := s.trips.CreateTrip(ctx, trip)
	if err != nil {
		s.files.Discard(ctx, stored)
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to save trip")
	}

	logger.FromContext(ctx).Info().Int64("trip_id", created.ID).Int64("author_id", author.ID).Msg("trip created")
	return created, nil
}

// Update replaces the photo list only when at least one supplied file has
// content; otherwise the stored photos are kept.
func (s *tripService) Update(ctx context.Context, id int64, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	existing, err := s.loadOwned(ctx, id, authorEmail)
	if err != nil {
		return models.Trip{}, err
	}

	var stored []models.StoredObject
	if uploads := nonEmptyUploads(photos); len(uploads) > 0 {
		if stored, err = s.files.Store(ctx, uploads); err != nil {
			return models.Trip{}, photoUploadError(err)
		}
		existing.Photos = urlsOf(stored)
	}
	draft.Apply(&existing)

	updated, err := s.trips.UpdateTrip(ctx, existing)
	if err != nil {
		s.files.Discard(ctx, stored)
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to save trip")
	}

	return updated, nil
}

// CreateFromPayload stores a trip whose photos are already-hosted URLs.
func (s *tripService) CreateFromPayload(ctx context.Context, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	author, err := s.resolveUser(ctx, authorEmail)
	if err != nil {
		return models.Trip{}, err
	}

	trip := models.Trip{Photos: payloadPhotos(payload.Photos), AuthorID: author.ID}
	payload.Draft().Apply(&trip)

	created, err := s.trips.CreateTrip(ctx, trip)
	if err != nil {
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to save trip")
	}

	return created, nil
}

// UpdateFromPayload overwrites every editable field, photos included.
func (s *tripService) UpdateFromPayload(ctx context.Context, id int64, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	existing, err := s.loadOwned(ctx, id, authorEmail)
	if err != nil {
		return models.Trip{}, err
	}

	existing.Photos = payloadPhotos(payload.Photos)
	payload.Draft().Apply(&existing)

	updated, err := s.trips.UpdateTrip(ctx, existing)
	if err != nil {
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to save trip")
	}

	return updated, nil
}

// Delete removes the trip without an existence or ownership check. The
// actor is logged so deletions by non-authors can be traced.
func (s *tripService) Delete(ctx context.Context, id int64, actorEmail string) error {
	logger.FromContext(ctx).Warn().Int64("trip_id", id).Str("actor", actorEmail).Msg("deleting trip without ownership check")

	if err := s.trips.DeleteTrip(ctx, id); err != nil {
		return s.repositoryError(ctx, err, "Failed to delete trip")
	}
	return nil
}

func (s *tripService) list(ctx context.Context, filter models.TripFilter, page models.PageRequest) (models.Page[models.Trip], error) {
	page = page.Normalize()

	trips, total, err := s.trips.ListTrips(ctx, filter, page)
	if err != nil {
		return models.Page[models.Trip]{}, s.repositoryError(ctx, err, "Failed to load trips")
	}

	return models.NewPage(trips, page, total), nil
}

// loadOwned returns trip id if the user behind email is its author.
func (s *tripService) loadOwned(ctx context.Context, id int64, email string) (models.Trip, error) {
	existing, err := s.trips.GetTripByID(ctx, id)
	if err != nil {
		return models.Trip{}, s.repositoryError(ctx, err, "Failed to load trip")
	}

	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return models.Trip{}, err
	}

	if existing.AuthorID == 0 || existing.AuthorID != user.ID {
		logger.FromContext(ctx).Warn().
			Int64("trip_id", id).
			Int64("author_id", existing.AuthorID).
			Int64("user_id", user.ID).
			Msg("ownership check failed")
		return models.Trip{}, newError(KindForbidden, "You can only edit your own trips", nil)
	}

	return existing, nil
}

func (s *tripService) resolveUser(ctx context.Context, email string) (models.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, newError(KindNotFound, "User not found: "+email, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user lookup failed")
		return models.User{}, newError(KindPersistenceFailed, "Failed to load user", err)
	}

	return user, nil
}

// repositoryError maps store errors to service kinds. Anything unknown is a
// persistence failure carrying message.
func (s *tripService) repositoryError(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, store.ErrTripNotFound):
		return newError(KindNotFound, "Trip not found", err)
	case errors.Is(err, store.ErrAuthorNotFound):
		return newError(KindNotFound, "User not found", err)
	default:
		logger.FromContext(ctx).Err(err).Msg(message)
		return newError(KindPersistenceFailed, message, err)
	}
}

func photoUploadError(err error) error {
	var serviceErr *Error
	if errors.As(err, &serviceErr) && serviceErr.Kind == KindUploadFailed {
		return newError(KindUploadFailed, "Failed to upload photos", serviceErr.Err)
	}
	return err
}

func nonEmptyUploads(uploads []models.Upload) []models.Upload {
	out := make([]models.Upload, 0, len(uploads))
	for _, upload := range uploads {
		if !upload.Empty() {
			out = append(out, upload)
		}
	}
	return out
}

func payloadPhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, photo := range photos {
		out = append(out, strings.TrimSpace(photo))
	}
	return out
}
