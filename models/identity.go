package models

// Identity is the authenticated caller of a single request.
type Identity struct {
	UserID      int64
	Email       string
	DisplayName string
}
