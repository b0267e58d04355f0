// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListTripsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListTripsQuery(models.TripFilter{}, models.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from trips t")
	assert.Contains(t, q, "left join users u on u.id = t.author_id")
	assert.Contains(t, q, "order by t.created_at desc, t.id desc")
	assert.Contains(t, q, "limit 10")
	assert.Contains(t, q, "offset 20")
	assert.NotContains(t, q, "where")
	assert.Empty(t, args)
}

func Test_buildListTripsQuery_Keyword(t *testing.T) {
	query, args, err := buildListTripsQuery(models.TripFilter{Keyword: "  Beach "}, models.PageRequest{Limit: 5})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "lower(t.title) like $1")
	assert.Contains(t, q, "lower(coalesce(t.description, '')) like $2")
	assert.Contains(t, q, "lower(t.location) like $3")
	assert.Contains(t, q, "unnest(t.tags)")
	assert.Contains(t, q, "lower(tag) like $4")

	require.Len(t, args, 4)
	for _, arg := range args {
		assert.Equal(t, "%beach%", arg)
	}
}

func Test_buildListTripsQuery_EscapesWildcards(t *testing.T) {
	_, args, err := buildListTripsQuery(models.TripFilter{Keyword: `50%_off\`}, models.PageRequest{Limit: 5})
	require.NoError(t, err)

	require.NotEmpty(t, args)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func Test_buildListTripsQuery_Author(t *testing.T) {
	query, args, err := buildListTripsQuery(models.TripFilter{AuthorID: 7}, models.PageRequest{Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, query, "t.author_id = $1")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildListTripsQuery_AuthorAndKeyword(t *testing.T) {
	query, args, err := buildListTripsQuery(models.TripFilter{AuthorID: 7, Keyword: "x"}, models.PageRequest{Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, query, "t.author_id = $1")
	assert.Contains(t, query, "LIKE $5")
	assert.Len(t, args, 5)
}

func Test_buildCountTripsQuery(t *testing.T) {
	query, args, err := buildCountTripsQuery(models.TripFilter{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM trips t", query)
	assert.Empty(t, args)

	query, args, err = buildCountTripsQuery(models.TripFilter{Keyword: "rome"})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE")
	assert.NotContains(t, strings.ToLower(query), "order by")
	assert.Len(t, args, 4)
}
