package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Pool limits for the trip store. Listing and search are the hot paths and
// every request holds a connection for a single statement.
const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxIdleTime = 5 * time.Minute
)

// DB is the PostgreSQL handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	pool, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening database")
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)
	pool.SetConnMaxIdleTime(connMaxIdleTime)

	if err = pool.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("database is unreachable")
		_ = pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database")

	return &DB{DB: pool, logger: log}, nil
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// postgresError returns the SQLSTATE of err, or "" for errors that did not
// come from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
