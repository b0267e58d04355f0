package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AccountServiceWrapper,TripServiceWrapper

import (
	"context"
	"io"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue signs a token for subjectEmail valid for the configured duration.
	Issue(ctx context.Context, subjectEmail string) (models.Token, error)

	// ExtractSubject verifies signature, issuer and expiry and returns the
	// subject email. Failures are [KindInvalidToken].
	ExtractSubject(ctx context.Context, token string) (string, error)
}

// AccountService registers users, logs them in and resolves bearer tokens
// to request identities.
type AccountService interface {
	Register(ctx context.Context, request models.RegisterRequest) error
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

// AccountServiceWrapper wraps an AccountService, e.g. with request
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// FileService stores uploaded files in object storage.
type FileService interface {
	// UploadOne stores a single non-empty file and returns its URL.
	UploadOne(ctx context.Context, upload models.Upload) (string, error)

	// UploadMany stores 1..5 non-empty files and returns their URLs in order.
	UploadMany(ctx context.Context, uploads []models.Upload) ([]string, error)

	// Store uploads sequentially. On the first failure the objects already
	// stored by this call are removed and a [KindUploadFailed] error is
	// returned.
	Store(ctx context.Context, uploads []models.Upload) ([]models.StoredObject, error)

	// Discard removes objects best-effort. Failures are only logged.
	Discard(ctx context.Context, objects []models.StoredObject)

	// Open returns a file served by this process (local backend only).
	// Unknown names and backends that host files elsewhere yield
	// [KindNotFound].
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

// TripService owns the trip lifecycle. Mutations take the acting user's
// email; Update is allowed only for the trip's author.
type TripService interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[models.Trip], error)
	Search(ctx context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error)
	ListMine(ctx context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error)
	Get(ctx context.Context, id int64) (models.Trip, error)

	Create(ctx context.Context, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error)
	Update(ctx context.Context, id int64, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error)
	CreateFromPayload(ctx context.Context, authorEmail string, payload models.TripPayload) (models.Trip, error)
	UpdateFromPayload(ctx context.Context, id int64, authorEmail string, payload models.TripPayload) (models.Trip, error)
	Delete(ctx context.Context, id int64, actorEmail string) error
}

// TripServiceWrapper defines middleware composition for TripService.
// Implementations wrap an existing TripService to add behavior such as
// validation.
type TripServiceWrapper interface {
	Wrap(TripService) TripService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing stores are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
