package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/app"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to decode request body")
		writeError(w, r, err)
		return
	}

	if err := h.services.AccountService.Register(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRegistered}, http.StatusOK)
}

// login answers every credential failure with the same 400 body so callers
// cannot tell an unknown email from a wrong password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to decode request body")
		writeError(w, r, err)
		return
	}

	response, err := h.services.AccountService.Login(r.Context(), request)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindNotFound, service.KindInvalidCredentials:
			logger.FromRequest(r).Debug().Err(err).Msg("login rejected")
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusBadRequest)
		default:
			writeError(w, r, err)
		}
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
