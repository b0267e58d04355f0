package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// tokenService signs HS256 tokens with a process-wide key loaded once from
// configuration. Tokens are stateless and cannot be revoked before expiry.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the App section.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, subjectEmail string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subjectEmail, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// ExtractSubject normalises every validation failure (bad signature,
// malformed, expired, wrong issuer, empty subject) to [KindInvalidToken].
func (s *tokenService) ExtractSubject(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		return "", newError(KindInvalidToken, "Invalid or expired token", err)
	}

	return parsed.Email, nil
}
