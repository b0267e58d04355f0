package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered under email or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TripRepository persists trips. Every returned trip carries its author
// projection when the trip has an author.
type TripRepository interface {
	// CreateTrip inserts trip and returns the stored record.
	CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)

	// UpdateTrip overwrites the editable fields of the trip with trip.ID and
	// refreshes updated_at. Returns [ErrTripNotFound] when the id is unknown.
	UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)

	// GetTripByID returns the trip with id or [ErrTripNotFound].
	GetTripByID(ctx context.Context, id int64) (models.Trip, error)

	// DeleteTrip removes the trip with id. Deleting an absent trip is not
	// an error.
	DeleteTrip(ctx context.Context, id int64) error

	// ListTrips returns one page of trips matching filter, newest first,
	// together with the total number of matches.
	ListTrips(ctx context.Context, filter models.TripFilter, page models.PageRequest) ([]models.Trip, int64, error)
}

// ObjectStorage stores uploaded files under caller-chosen keys and hands out
// public URLs for them.
type ObjectStorage interface {
	// Put stores upload under key and returns its public URL.
	Put(ctx context.Context, key string, upload models.Upload) (models.StoredObject, error)

	// Remove deletes the object stored under key.
	Remove(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// ObjectReader is implemented by backends that serve stored files
// through this server (the local backend).
type ObjectReader interface {
	Open(ctx context.Context, key string) (io.ReadSeekCloser, error)
}
