package http

import (
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxUploadSize); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, opened, err := formFiles(r, "file")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer opened.Close()

	if len(files) == 0 {
		writeError(w, r, missingParameter("file"))
		return
	}

	url, err := h.services.FileService.UploadOne(r.Context(), files[0])
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FileURLResponse{URL: url}, http.StatusOK)
}

func (h *Handler) uploadFiles(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxUploadSize); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, opened, err := formFiles(r, "files")
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer opened.Close()

	urls, err := h.services.FileService.UploadMany(r.Context(), files)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FileURLsResponse{URLs: urls}, http.StatusOK)
}

// serveFile streams a file stored by the local object backend.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	file, err := h.services.FileService.Open(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, name, time.Time{}, file)
}
