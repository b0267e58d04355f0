package models

import "io"

// Upload is one file received from a client, not yet stored.
type Upload struct {
	// Filename is the client-supplied name, possibly empty.
	Filename string

	// ContentType is the declared MIME type, possibly empty.
	ContentType string

	// Size is the declared length of Content in bytes.
	Size int64

	// Content streams the file bytes. Nil means the part was missing.
	Content io.Reader
}

// Missing reports whether the upload slot carries no file at all.
func (u Upload) Missing() bool {
	return u.Content == nil
}

// Empty reports whether the upload has no bytes to store.
func (u Upload) Empty() bool {
	return u.Content == nil || u.Size <= 0
}

// StoredObject identifies a file persisted by an object storage backend.
type StoredObject struct {
	// Key is the backend-specific object name used for deletion.
	Key string

	// URL is the public link returned to clients.
	URL string
}
