package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is how much of a multipart body is kept in memory before
// file parts spill to temporary files.
const multipartMemory = 8 << 20

// maxJSONBody bounds the auth and trip JSON bodies.
const maxJSONBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidParameter("id", err)
	}
	return id, nil
}

// pageRequest reads page (default 0) and limit (default 10). Out-of-range
// values are normalized later by the service.
func pageRequest(r *http.Request) (models.PageRequest, error) {
	page := models.PageRequest{Page: 0, Limit: models.DefaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return models.PageRequest{}, invalidParameter("page", err)
		}
		page.Page = value
	}
	if raw := query.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return models.PageRequest{}, invalidParameter("limit", err)
		}
		page.Limit = value
	}

	return page, nil
}

// parseMultipart reads a multipart body of at most maxSize bytes. The
// caller must release the parsed form with r.MultipartForm.RemoveAll.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		return fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, maxSize)
	}
	return &uploadError{err: err}
}

// openedFiles keeps the multipart files opened for one request so they can
// be closed together.
type openedFiles []multipart.File

func (f openedFiles) Close() {
	for _, file := range f {
		file.Close()
	}
}

// formFiles opens every file part named field in submission order.
func formFiles(r *http.Request, field string) ([]models.Upload, openedFiles, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	headers := r.MultipartForm.File[field]
	uploads := make([]models.Upload, 0, len(headers))
	opened := make(openedFiles, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			opened.Close()
			return nil, nil, &uploadError{err: err}
		}
		opened = append(opened, file)
		uploads = append(uploads, uploadFromHeader(header, file))
	}

	return uploads, opened, nil
}

func uploadFromHeader(header *multipart.FileHeader, file multipart.File) models.Upload {
	return models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}

// formValue returns the first value of a form field and whether the field
// was sent at all.
func formValue(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func requiredFormValue(r *http.Request, name string) (string, error) {
	value, ok := formValue(r, name)
	if !ok {
		return "", missingParameter(name)
	}
	return value, nil
}

func optionalFloat(r *http.Request, name string) (*float64, error) {
	raw, ok := formValue(r, name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, invalidParameter(name, err)
	}
	return &value, nil
}

// tripDraft reads the editable trip fields of a multipart create or update.
// Tags may be repeated ("tags") or use the bracket form ("tags[]").
func tripDraft(r *http.Request) (models.TripDraft, error) {
	title, err := requiredFormValue(r, "title")
	if err != nil {
		return models.TripDraft{}, err
	}
	location, err := requiredFormValue(r, "location")
	if err != nil {
		return models.TripDraft{}, err
	}
	latitude, err := optionalFloat(r, "latitude")
	if err != nil {
		return models.TripDraft{}, err
	}
	longitude, err := optionalFloat(r, "longitude")
	if err != nil {
		return models.TripDraft{}, err
	}
	description, _ := formValue(r, "description")

	var tags []string
	tags = append(tags, r.MultipartForm.Value["tags"]...)
	tags = append(tags, r.MultipartForm.Value["tags[]"]...)

	return models.TripDraft{
		Title:       title,
		Description: description,
		Tags:        tags,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
	}, nil
}
