// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// trip-keeper HTTP handlers and middleware.
//
// All Msg* constants are client-facing strings written into JSON response
// bodies. Messages that name a parameter or carry a parser error are
// prefixes; the handler appends the detail.
package app

const (
	// MsgRegistered confirms a successful registration.
	MsgRegistered = "Registered successfully"

	// MsgInvalidCredentials is the single login failure message, used for
	// both an unknown email and a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAuthenticationRequired is returned by protected routes for
	// anonymous requests.
	MsgAuthenticationRequired = "Authentication required"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgBodyTooLarge is returned when a JSON body exceeds its limit.
	MsgBodyTooLarge = "Request body exceeds maximum allowed size"

	// MsgMissingParameter prefixes the name of an absent required
	// query, form or multipart field.
	MsgMissingParameter = "Missing required parameter: "

	// MsgInvalidParameter prefixes the name of a parameter that could not
	// be parsed.
	MsgInvalidParameter = "Invalid value for parameter: "

	// MsgFileUploadError prefixes the multipart parser failure.
	MsgFileUploadError = "File upload error: "

	// MsgFileTooLarge is returned when a multipart body exceeds the
	// configured limit.
	MsgFileTooLarge = "File size exceeds maximum allowed size"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned for known routes called with the
	// wrong method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError hides unexpected failures from clients.
	MsgInternalServerError = "Internal server error"
)
