// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingParameter is returned when a required query, form or
	// multipart field is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter is returned when a parameter is present but
	// cannot be parsed (non-numeric id, page or coordinate).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUploadTooLarge is returned when a multipart body exceeds the
	// configured upload limit.
	ErrUploadTooLarge = errors.New("file size exceeds maximum allowed size")

	// ErrMalformedUpload is returned when a multipart body cannot be parsed.
	ErrMalformedUpload = errors.New("file upload error")

	// ErrBodyTooLarge is returned when a JSON body exceeds its size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnauthenticated is reported by requireAuth for anonymous requests
	// to protected routes.
	ErrUnauthenticated = errors.New("authentication required")
)

// paramError names the offending parameter.
type paramError struct {
	kind error
	name string
	err  error
}

func (e *paramError) Error() string {
	if e.err != nil {
		return e.kind.Error() + ": " + e.name + ": " + e.err.Error()
	}
	return e.kind.Error() + ": " + e.name
}

func (e *paramError) Unwrap() []error {
	if e.err != nil {
		return []error{e.kind, e.err}
	}
	return []error{e.kind}
}

func missingParameter(name string) error {
	return &paramError{kind: ErrMissingParameter, name: name}
}

func invalidParameter(name string, err error) error {
	return &paramError{kind: ErrInvalidParameter, name: name, err: err}
}

// uploadError carries the parser failure behind [ErrMalformedUpload].
type uploadError struct {
	err error
}

func (e *uploadError) Error() string {
	return ErrMalformedUpload.Error() + ": " + e.err.Error()
}

func (e *uploadError) Unwrap() []error {
	return []error{ErrMalformedUpload, e.err}
}
