package store

import (
	"strings"

	"github.com/MKhiriev/go-trip-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, display_name)
    VALUES ($1, $2, $3)
    RETURNING id, email, password_hash, COALESCE(display_name, ''), created_at;`

	findUserByEmail = `SELECT id, email, password_hash, COALESCE(display_name, ''), created_at
    FROM users
    WHERE email = $1;`

	tripColumns = `t.id, t.title, t.description, t.photos, t.tags, t.location, t.latitude, t.longitude,
        t.author_id, t.created_at, t.updated_at, u.email, u.display_name`

	createTrip = `WITH t AS (
        INSERT INTO trips (title, description, photos, tags, location, latitude, longitude, author_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING *
    )
    SELECT ` + tripColumns + `
    FROM t LEFT JOIN users u ON u.id = t.author_id;`

	updateTrip = `WITH t AS (
        UPDATE trips
        SET title = $1, description = $2, photos = $3, tags = $4, location = $5,
            latitude = $6, longitude = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING *
    )
    SELECT ` + tripColumns + `
    FROM t LEFT JOIN users u ON u.id = t.author_id;`

	getTripByID = `SELECT ` + tripColumns + `
    FROM trips t LEFT JOIN users u ON u.id = t.author_id
    WHERE t.id = $1;`

	deleteTrip = `DELETE FROM trips WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE wildcards so a keyword is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// tripFilterCondition translates filter into a WHERE condition, or nil when
// the filter matches every trip.
func tripFilterCondition(filter models.TripFilter) sq.Sqlizer {
	conditions := sq.And{}

	if filter.AuthorID != 0 {
		conditions = append(conditions, sq.Eq{"t.author_id": filter.AuthorID})
	}

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
		conditions = append(conditions, sq.Or{
			sq.Expr("LOWER(t.title) LIKE ?", pattern),
			sq.Expr("LOWER(COALESCE(t.description, '')) LIKE ?", pattern),
			sq.Expr("LOWER(t.location) LIKE ?", pattern),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(t.tags) AS tag WHERE LOWER(tag) LIKE ?)", pattern),
		})
	}

	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

// buildListTripsQuery renders the page query for filter.
func buildListTripsQuery(filter models.TripFilter, page models.PageRequest) (string, []any, error) {
	query := psql.Select(tripColumns).
		From("trips t").
		LeftJoin("users u ON u.id = t.author_id").
		OrderBy("t.created_at DESC", "t.id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset())

	if cond := tripFilterCondition(filter); cond != nil {
		query = query.Where(cond)
	}

	return query.ToSql()
}

// buildCountTripsQuery renders the total-count query for filter.
func buildCountTripsQuery(filter models.TripFilter) (string, []any, error) {
	query := psql.Select("COUNT(*)").From("trips t")

	if cond := tripFilterCondition(filter); cond != nil {
		query = query.Where(cond)
	}

	return query.ToSql()
}
