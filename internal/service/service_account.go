package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

// accountService handles registration, credential verification and the
// token-to-identity resolution used by the authentication middleware.
type accountService struct {
	userRepository store.UserRepository
	tokens         TokenService

	// hashCost is the bcrypt cost used for new password hashes.
	hashCost int

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		tokens:         tokens,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// Register creates an account under the lower-cased email.
//
// Returns:
//   - [KindConflict] "Email already exists" when the email is taken (checked
//     up front and again by the unique index).
//   - [KindPersistenceFailed] on hashing or storage failure.
func (a *accountService) Register(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return newError(KindConflict, "Email already exists", store.ErrEmailAlreadyExists)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user lookup before registration failed")
		return newError(KindPersistenceFailed, "Failed to register user", err)
	}

	hash, err := utils.HashPassword(request.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return newError(KindPersistenceFailed, "Failed to register user", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  request.DisplayName,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return newError(KindConflict, "Email already exists", err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return newError(KindPersistenceFailed, "Failed to register user", err)
	}

	log.Info().Str("email", email).Msg("user registered")
	return nil
}

// Login verifies credentials and issues a token.
//
// Returns [KindNotFound] for an unknown email and [KindInvalidCredentials]
// for a wrong password. Both carry the same client message.
func (a *accountService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.LoginResponse{}, newError(KindNotFound, "Invalid credentials", err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.LoginResponse{}, newError(KindPersistenceFailed, "Failed to log in", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, request.Password); err != nil {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, newError(KindInvalidCredentials, "Invalid credentials", err)
	}

	token, err := a.tokens.Issue(ctx, user.Email)
	if err != nil {
		return models.LoginResponse{}, newError(KindPersistenceFailed, "Failed to log in", err)
	}

	return models.LoginResponse{
		Token:       token.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

// Authenticate resolves a bearer token to the identity of an existing user.
func (a *accountService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	email, err := a.tokens.ExtractSubject(ctx, token)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, newError(KindInvalidToken, "Invalid or expired token", err)
	}
	if err != nil {
		return models.Identity{}, newError(KindPersistenceFailed, "Failed to authenticate", fmt.Errorf("error loading token subject: %w", err))
	}

	return models.Identity{UserID: user.ID, Email: user.Email, DisplayName: user.DisplayName}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
