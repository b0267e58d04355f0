package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a bearer token together with the claims it was issued or
// parsed with.
//
// It embeds [jwt.Token] for low-level access and [jwt.RegisteredClaims]
// so the token can be handed to jwt.ParseWithClaims directly.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON.
	*jwt.Token `json:"-"`

	// RegisteredClaims carries sub, exp, iat and iss.
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// Email is the subject the token was issued for.
	Email string `json:"-"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
