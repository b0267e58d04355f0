// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// listTrips serves both the plain listing and keyword search.
func (h *Handler) listTrips(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var result models.Page[models.Trip]
	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		result, err = h.services.TripService.Search(r.Context(), keyword, page)
	} else {
		result, err = h.services.TripService.List(r.Context(), page)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listMyTrips(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.TripService.ListMine(r.Context(), identity.Email, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	if err := parseMultipart(w, r, h.maxUploadSize); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	draft, err := tripDraft(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	photos, opened, err := formFiles(r, "photos")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer opened.Close()

	trip, err := h.services.TripService.Create(r.Context(), identity.Email, draft, photos)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) updateTrip(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = parseMultipart(w, r, h.maxUploadSize); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	draft, err := tripDraft(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	photos, opened, err := formFiles(r, "photos")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer opened.Close()

	trip, err := h.services.TripService.Update(r.Context(), id, identity.Email, draft, photos)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) createTripJSON(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	var payload models.TripPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.CreateFromPayload(r.Context(), identity.Email, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) updateTripJSON(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload models.TripPayload
	if err = decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.UpdateFromPayload(r.Context(), id, identity.Email, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TripService.Delete(r.Context(), id, identity.Email); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
