// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripsFake(services *service.Services) *fakeTripService {
	return services.TripService.(*fakeTripService)
}

func sampleTrip(id int64) models.Trip {
	return models.Trip{ID: id, Title: "Trip", Location: "Oslo", Photos: []string{"http://cdn/a.jpg"}, Tags: []string{}}
}

// ── listTrips ────────────────────────────────────────────────────────────────

func TestListTrips(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantKeyword string
		wantPage    models.PageRequest
	}{
		{name: "defaults", target: "/api/trips", wantPage: models.PageRequest{Page: 0, Limit: 10}},
		{name: "explicit page", target: "/api/trips?page=2&limit=5", wantPage: models.PageRequest{Page: 2, Limit: 5}},
		{name: "negative values pass to service", target: "/api/trips?page=-1&limit=0", wantPage: models.PageRequest{Page: -1, Limit: 0}},
		{name: "keyword search", target: "/api/trips?keyword=beach&limit=3", wantKeyword: "beach", wantPage: models.PageRequest{Page: 0, Limit: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			var (
				gotPage    models.PageRequest
				gotKeyword string
			)
			fake := tripsFake(services)
			fake.listFn = func(_ context.Context, page models.PageRequest) (models.Page[models.Trip], error) {
				gotPage = page
				return models.NewPage([]models.Trip{sampleTrip(1)}, page.Normalize(), 1), nil
			}
			fake.searchFn = func(_ context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error) {
				gotKeyword, gotPage = keyword, page
				return models.NewPage[models.Trip](nil, page.Normalize(), 0), nil
			}

			rr := serve(newRouterHandler(services, config.Server{}), httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantPage, gotPage)
			assert.Equal(t, tt.wantKeyword, gotKeyword)

			var page models.Page[models.Trip]
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
			assert.NotNil(t, page.Data)
		})
	}
}

func TestListTrips_InvalidPage(t *testing.T) {
	rr := serve(newRouterHandler(newTestServices(), config.Server{}), httptest.NewRequest(http.MethodGet, "/api/trips?page=first", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid value for parameter: page", errorBody(t, rr))
}

func TestListMyTrips(t *testing.T) {
	services := newTestServices()
	var gotEmail string
	tripsFake(services).listMineFn = func(_ context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error) {
		gotEmail = email
		return models.NewPage([]models.Trip{sampleTrip(2)}, page, 1), nil
	}

	req := withToken(httptest.NewRequest(http.MethodGet, "/api/trips/my-trips", nil), aliceToken)
	rr := serve(newRouterHandler(services, config.Server{}), req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, alice.Email, gotEmail)
	assert.JSONEq(t, `{"data":[{"id":2,"title":"Trip","description":"","photos":["http://cdn/a.jpg"],"tags":[],"location":"Oslo","latitude":null,"longitude":null,"author":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}],"page":0,"limit":10,"total":1,"totalPages":1}`, rr.Body.String())
}

// ── getTrip ──────────────────────────────────────────────────────────────────

func TestGetTrip(t *testing.T) {
	services := newTestServices()
	tripsFake(services).getFn = func(_ context.Context, id int64) (models.Trip, error) {
		if id == 404 {
			return models.Trip{}, &service.Error{Kind: service.KindNotFound, Message: "Trip not found"}
		}
		return sampleTrip(id), nil
	}
	h := newRouterHandler(services, config.Server{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/trips/7", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var trip models.Trip
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &trip))
	assert.Equal(t, int64(7), trip.ID)

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/trips/404", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Trip not found", errorBody(t, rr))

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/trips/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid value for parameter: id", errorBody(t, rr))
}

// ── createTrip ───────────────────────────────────────────────────────────────

func TestCreateTrip_Multipart(t *testing.T) {
	services := newTestServices()
	var (
		gotEmail  string
		gotDraft  models.TripDraft
		gotBodies []string
	)
	tripsFake(services).createFn = func(_ context.Context, email string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
		gotEmail, gotDraft = email, draft
		for _, p := range photos {
			raw, err := io.ReadAll(p.Content)
			require.NoError(t, err)
			gotBodies = append(gotBodies, p.Filename+"="+string(raw))
		}
		return sampleTrip(11), nil
	}

	req := multipartRequest(t, http.MethodPost, "/api/trips", map[string][]string{
		"title":       {"Fjords"},
		"description": {"cold"},
		"location":    {"Bergen"},
		"latitude":    {"60.39"},
		"longitude":   {" 5.32 "},
		"tags":        {"norway"},
		"tags[]":      {"water"},
	}, []formFile{
		{field: "photos", name: "a.jpg", body: "AAA"},
		{field: "photos", name: "b.jpg", body: "BB"},
	})
	rr := serve(newRouterHandler(services, config.Server{}), withToken(req, aliceToken))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, alice.Email, gotEmail)
	assert.Equal(t, "Fjords", gotDraft.Title)
	assert.Equal(t, "cold", gotDraft.Description)
	assert.Equal(t, "Bergen", gotDraft.Location)
	assert.Equal(t, []string{"norway", "water"}, gotDraft.Tags)
	require.NotNil(t, gotDraft.Latitude)
	require.NotNil(t, gotDraft.Longitude)
	assert.InDelta(t, 60.39, *gotDraft.Latitude, 1e-9)
	assert.InDelta(t, 5.32, *gotDraft.Longitude, 1e-9)
	assert.Equal(t, []string{"a.jpg=AAA", "b.jpg=BB"}, gotBodies)
}

func TestCreateTrip_RequestErrors(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string][]string
		wantError string
	}{
		{name: "missing title", values: map[string][]string{"location": {"L"}}, wantError: "Missing required parameter: title"},
		{name: "missing location", values: map[string][]string{"title": {"T"}}, wantError: "Missing required parameter: location"},
		{name: "bad latitude", values: map[string][]string{"title": {"T"}, "location": {"L"}, "latitude": {"north"}}, wantError: "Invalid value for parameter: latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			tripsFake(services).createFn = func(context.Context, string, models.TripDraft, []models.Upload) (models.Trip, error) {
				t.Fatal("service must not be called")
				return models.Trip{}, nil
			}

			req := multipartRequest(t, http.MethodPost, "/api/trips", tt.values, []formFile{{field: "photos", name: "a.jpg", body: "A"}})
			rr := serve(newRouterHandler(services, config.Server{}), withToken(req, aliceToken))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
		})
	}
}

func TestCreateTrip_NoPhotosReachesService(t *testing.T) {
	services := newTestServices()
	tripsFake(services).createFn = func(_ context.Context, _ string, _ models.TripDraft, photos []models.Upload) (models.Trip, error) {
		assert.Empty(t, photos)
		return models.Trip{}, &service.Error{Kind: service.KindValidation, Message: "At least 1 photo is required"}
	}

	req := multipartRequest(t, http.MethodPost, "/api/trips", map[string][]string{"title": {"T"}, "location": {"L"}}, nil)
	rr := serve(newRouterHandler(services, config.Server{}), withToken(req, aliceToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "At least 1 photo is required", errorBody(t, rr))
}

func TestCreateTrip_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(newRouterHandler(newTestServices(), config.Server{}), withToken(req, aliceToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, strings.HasPrefix(errorBody(t, rr), "File upload error: "))
}

func TestCreateTrip_BodyTooLarge(t *testing.T) {
	req := multipartRequest(t, http.MethodPost, "/api/trips",
		map[string][]string{"title": {"T"}, "location": {"L"}},
		[]formFile{{field: "photos", name: "big.jpg", body: strings.Repeat("x", 4096)}},
	)
	rr := serve(newRouterHandler(newTestServices(), config.Server{MaxUploadSize: 512}), withToken(req, aliceToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File size exceeds maximum allowed size", errorBody(t, rr))
}

func TestCreateTrip_UploadFailed(t *testing.T) {
	services := newTestServices()
	tripsFake(services).createFn = func(context.Context, string, models.TripDraft, []models.Upload) (models.Trip, error) {
		return models.Trip{}, &service.Error{Kind: service.KindUploadFailed, Message: "Failed to upload photos"}
	}

	req := multipartRequest(t, http.MethodPost, "/api/trips", map[string][]string{"title": {"T"}, "location": {"L"}}, []formFile{{field: "photos", name: "a.jpg", body: "A"}})
	rr := serve(newRouterHandler(services, config.Server{}), withToken(req, aliceToken))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to upload photos", errorBody(t, rr))
}

// ── updateTrip ───────────────────────────────────────────────────────────────

func TestUpdateTrip(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "author", wantStatus: http.StatusOK},
		{name: "someone else", err: &service.Error{Kind: service.KindForbidden, Message: "You can only update your own trips"}, wantStatus: http.StatusForbidden},
		{name: "missing trip", err: &service.Error{Kind: service.KindNotFound, Message: "Trip not found"}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			tripsFake(services).updateFn = func(_ context.Context, id int64, email string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
				assert.Equal(t, int64(5), id)
				assert.Equal(t, alice.Email, email)
				assert.Equal(t, "New", draft.Title)
				assert.Empty(t, photos)
				if tt.err != nil {
					return models.Trip{}, tt.err
				}
				return sampleTrip(id), nil
			}

			req := multipartRequest(t, http.MethodPut, "/api/trips/5", map[string][]string{"title": {"New"}, "location": {"L"}}, nil)
			rr := serve(newRouterHandler(services, config.Server{}), withToken(req, aliceToken))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── JSON variants ────────────────────────────────────────────────────────────

func TestCreateTripJSON(t *testing.T) {
	services := newTestServices()
	lat := 1.5
	payload := models.TripPayload{Title: "T", Location: "L", Photos: []string{"http://cdn/x.jpg"}, Latitude: &lat}
	tripsFake(services).createFromPayloadFn = func(_ context.Context, email string, got models.TripPayload) (models.Trip, error) {
		assert.Equal(t, alice.Email, email)
		assert.Equal(t, payload, got)
		return sampleTrip(3), nil
	}
	h := newRouterHandler(services, config.Server{})

	rr := serve(h, withToken(jsonRequest(t, http.MethodPost, "/api/trips/json", payload), aliceToken))
	assert.Equal(t, http.StatusOK, rr.Code)

	bad := withToken(httptest.NewRequest(http.MethodPost, "/api/trips/json", strings.NewReader("not json")), aliceToken)
	rr = serve(h, bad)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", errorBody(t, rr))

	huge := `{"title":"T","location":"L","description":"` + strings.Repeat("d", maxJSONBody) + `"}`
	rr = serve(h, withToken(httptest.NewRequest(http.MethodPost, "/api/trips/json", strings.NewReader(huge)), aliceToken))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "Request body exceeds maximum allowed size", errorBody(t, rr))
}

func TestUpdateTripJSON(t *testing.T) {
	services := newTestServices()
	tripsFake(services).updateFromPayloadFn = func(_ context.Context, id int64, email string, payload models.TripPayload) (models.Trip, error) {
		assert.Equal(t, int64(8), id)
		assert.Equal(t, alice.Email, email)
		return models.Trip{}, &service.Error{Kind: service.KindValidation, Message: "Maximum 5 photos allowed"}
	}

	req := withToken(jsonRequest(t, http.MethodPut, "/api/trips/8/json", models.TripPayload{Title: "T"}), aliceToken)
	rr := serve(newRouterHandler(services, config.Server{}), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Maximum 5 photos allowed", errorBody(t, rr))
}

// ── deleteTrip ───────────────────────────────────────────────────────────────

func TestDeleteTrip(t *testing.T) {
	services := newTestServices()
	tripsFake(services).deleteFn = func(_ context.Context, id int64, email string) error {
		assert.Equal(t, alice.Email, email)
		if id == 9 {
			return &service.Error{Kind: service.KindNotFound, Message: "Trip not found"}
		}
		return nil
	}
	h := newRouterHandler(services, config.Server{})

	rr := serve(h, withToken(httptest.NewRequest(http.MethodDelete, "/api/trips/1", nil), aliceToken))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(h, withToken(httptest.NewRequest(http.MethodDelete, "/api/trips/9", nil), aliceToken))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
