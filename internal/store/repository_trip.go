// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgtype"
)

// tripRepository is the PostgreSQL-backed implementation of [TripRepository].
//
// Photos and tags live in TEXT[] columns; they are written as []string
// arguments and read back through a [pgtype.Map] scanner. Every read joins
// "users" so the author projection arrives with the trip.
type tripRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTripRepository constructs a [TripRepository] backed by db.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTrip inserts trip and reads back the stored row with its author.
// A dangling author_id maps to [ErrAuthorNotFound].
func (r *tripRepository) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTrip, tripArgs(trip, nullInt64(trip.AuthorID))...)
	created, err := scanTrip(row)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("error inserting trip")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Trip{}, ErrAuthorNotFound
		default:
			return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// UpdateTrip overwrites the editable columns of trip.ID. The author is never
// changed here.
func (r *tripRepository) UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateTrip, tripArgs(trip, trip.ID)...)
	updated, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrTripNotFound
		}

		log.Err(err).Str("func", "*tripRepository.UpdateTrip").Int64("trip_id", trip.ID).Msg("error updating trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, id int64) (models.Trip, error) {
	log := logger.FromContext(ctx)

	trip, err := scanTrip(r.db.QueryRowContext(ctx, getTripByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrTripNotFound
		}

		log.Err(err).Str("func", "*tripRepository.GetTripByID").Int64("trip_id", id).Msg("error selecting trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return trip, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTrip, id)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteTrip").Int64("trip_id", id).Msg("error deleting trip")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Debug().Str("func", "*tripRepository.DeleteTrip").Int64("trip_id", id).Msg("no trip deleted")
	}

	return nil
}

// ListTrips runs the count and the page query inside one read-only
// repeatable-read transaction so total and data describe the same snapshot.
func (r *tripRepository) ListTrips(ctx context.Context, filter models.TripFilter, page models.PageRequest) ([]models.Trip, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountTripsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListTripsQuery(filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error beginning transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var total int64
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error counting trips")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	trips := make([]models.Trip, 0, pageCapacity(total, page.Limit))
	if total > 0 {
		rows, err := tx.QueryContext(ctx, listQuery, listArgs...)
		if err != nil {
			log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error selecting trips")
			return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			trip, err := scanTrip(rows)
			if err != nil {
				log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error scanning trip")
				return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			trips = append(trips, trip)
		}
		if err = rows.Err(); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error committing transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return trips, total, nil
}

// pageCapacity sizes the result slice by what the count allows, never by
// the requested limit alone.
func pageCapacity(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(min(total, int64(limit)))
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTrip reads one row laid out as tripColumns.
func scanTrip(row rowScanner) (models.Trip, error) {
	var (
		trip        models.Trip
		description sql.NullString
		latitude    sql.NullFloat64
		longitude   sql.NullFloat64
		authorID    sql.NullInt64
		authorEmail sql.NullString
		authorName  sql.NullString
	)

	typeMap := pgtype.NewMap()
	err := row.Scan(
		&trip.ID,
		&trip.Title,
		&description,
		typeMap.SQLScanner(&trip.Photos),
		typeMap.SQLScanner(&trip.Tags),
		&trip.Location,
		&latitude,
		&longitude,
		&authorID,
		&trip.CreatedAt,
		&trip.UpdatedAt,
		&authorEmail,
		&authorName,
	)
	if err != nil {
		return models.Trip{}, err
	}

	trip.Description = description.String
	if latitude.Valid {
		trip.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		trip.Longitude = &longitude.Float64
	}
	if trip.Photos == nil {
		trip.Photos = []string{}
	}
	if trip.Tags == nil {
		trip.Tags = []string{}
	}
	if authorID.Valid {
		trip.AuthorID = authorID.Int64
		trip.Author = &models.Author{
			ID:          authorID.Int64,
			Email:       authorEmail.String,
			DisplayName: authorName.String,
		}
	}

	return trip, nil
}

// tripArgs lists the editable trip columns in statement order followed by
// last ($8).
func tripArgs(trip models.Trip, last any) []any {
	photos := trip.Photos
	if photos == nil {
		photos = []string{}
	}

	return []any{
		trip.Title,
		nullString(trip.Description),
		photos,
		models.NormalizeTags(trip.Tags),
		trip.Location,
		trip.Latitude,
		trip.Longitude,
		last,
	}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
