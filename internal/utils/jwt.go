package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerScheme is the Authorization header prefix carrying a token.
const BearerScheme = "Bearer "

var (
	// ErrNoBearerToken means the Authorization header does not carry a
	// bearer token (missing header, other scheme or blank token).
	ErrNoBearerToken = errors.New("no bearer token in `Authorization` header")

	// ErrEmptySubject means a token verified but carries no subject.
	ErrEmptySubject = errors.New("empty subject in token")
)

// GenerateJWTToken creates an HS256 token for subject.
//
// The token carries iss, sub, iat and exp (now + tokenDuration). All
// parameters are required.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Email: subject}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer and
// expiry of tokenString and returns the parsed token with its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if strings.TrimSpace(subject) == "" {
		return models.Token{}, ErrEmptySubject
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.Email = subject

	return *parsed, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". Any other shape yields [ErrNoBearerToken].
func ParseBearerToken(authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, BearerScheme) {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, BearerScheme))
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}
