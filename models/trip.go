// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// MaxTripPhotos is the largest number of photos a trip may carry.
const MaxTripPhotos = 5

// Trip is a published travel record.
type Trip struct {
	// ID is assigned by the trip repository.
	ID int64 `json:"id"`

	// Title is required and never blank.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// Photos holds up to MaxTripPhotos public URLs in upload order.
	Photos []string `json:"photos"`

	// Tags holds free-form labels in submission order.
	Tags []string `json:"tags"`

	// Location is required and never blank.
	Location string `json:"location"`

	// Latitude and Longitude are optional and not range checked.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// AuthorID references the owning user. Zero means no author.
	AuthorID int64 `json:"-"`

	// Author is the owner projection loaded together with the trip.
	Author *Author `json:"author"`

	// CreatedAt is set on creation and never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Trip model.
func (t Trip) TableName() string {
	return "trips"
}

// TripDraft carries the user-editable fields of a trip submitted through
// the multipart create and update endpoints.
type TripDraft struct {
	Title       string
	Description string
	Tags        []string
	Location    string
	Latitude    *float64
	Longitude   *float64
}

// Apply overwrites the editable fields of t with the draft. A nil tag list
// becomes an empty one.
func (d TripDraft) Apply(t *Trip) {
	t.Title = d.Title
	t.Description = d.Description
	t.Tags = NormalizeTags(d.Tags)
	t.Location = d.Location
	t.Latitude = d.Latitude
	t.Longitude = d.Longitude
}

// TripPayload is the JSON body accepted by POST /api/trips/json and
// PUT /api/trips/{id}/json. Photos are already-stored URLs.
type TripPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Draft returns the editable fields of the payload.
func (p TripPayload) Draft() TripDraft {
	return TripDraft{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Location:    p.Location,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
}

// TripFilter narrows a trip listing. The zero value matches every trip.
type TripFilter struct {
	// Keyword is matched case-insensitively as a substring of the title,
	// description, location or any tag.
	Keyword string

	// AuthorID restricts the listing to one author when non-zero.
	AuthorID int64
}

// NormalizeTags returns tags without blank entries, never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
