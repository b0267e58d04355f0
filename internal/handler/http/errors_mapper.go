package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/app"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// statusFromKind is the only place where service error kinds become HTTP
// statuses.
func statusFromKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindConflict, service.KindInvalidCredentials:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindInvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error body. Service errors keep their
// client message; request input errors name the parameter; anything else
// becomes an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var serviceErr *service.Error
	if errors.As(err, &serviceErr) {
		status := statusFromKind(serviceErr.Kind)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("kind", serviceErr.Kind.String()).Msg("request failed")
		} else {
			log.Debug().Err(err).Str("kind", serviceErr.Kind.String()).Msg("request rejected")
		}

		if len(serviceErr.Fields) > 0 {
			utils.WriteJSON(w, models.ValidationErrorResponse{Message: serviceErr.Message, Errors: serviceErr.Fields}, status)
			return
		}
		utils.WriteError(w, serviceErr.Message, status)
		return
	}

	var (
		param  *paramError
		upload *uploadError
	)
	switch {
	case errors.As(err, &param) && errors.Is(err, ErrMissingParameter):
		utils.WriteError(w, app.MsgMissingParameter+param.name, http.StatusBadRequest)
	case errors.As(err, &param):
		utils.WriteError(w, app.MsgInvalidParameter+param.name, http.StatusBadRequest)
	case errors.Is(err, ErrUploadTooLarge):
		utils.WriteError(w, app.MsgFileTooLarge, http.StatusBadRequest)
	case errors.As(err, &upload):
		utils.WriteError(w, app.MsgFileUploadError+upload.err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBodyTooLarge):
		utils.WriteError(w, app.MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrInvalidJSON):
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
	case errors.Is(err, ErrUnauthenticated):
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
	default:
		log.Err(err).Msg("unexpected error")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
