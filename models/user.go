package models

import "time"

// User is an account that can sign in and author trips.
// PasswordHash never leaves the server.
type User struct {
	// ID is assigned by the credential store.
	ID int64 `json:"id"`

	// Email is unique and always stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// DisplayName is shown next to the user's trips.
	DisplayName string `json:"displayName"`

	// CreatedAt is set once at registration.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Author returns the public projection of u embedded in trips.
func (u User) Author() *Author {
	return &Author{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

// Author is the public view of a trip's owner.
type Author struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
