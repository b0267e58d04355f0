package http

import (
	"context"
	"io"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type fakeAccountService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) error
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.Identity, error)
}

func (f *fakeAccountService) Register(ctx context.Context, request models.RegisterRequest) error {
	return f.registerFn(ctx, request)
}

func (f *fakeAccountService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAccountService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	if f.authenticateFn == nil {
		return models.Identity{}, &service.Error{Kind: service.KindInvalidToken, Message: "Invalid token"}
	}
	return f.authenticateFn(ctx, token)
}

type fakeTripService struct {
	listFn              func(ctx context.Context, page models.PageRequest) (models.Page[models.Trip], error)
	searchFn            func(ctx context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error)
	listMineFn          func(ctx context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error)
	getFn               func(ctx context.Context, id int64) (models.Trip, error)
	createFn            func(ctx context.Context, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error)
	updateFn            func(ctx context.Context, id int64, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error)
	createFromPayloadFn func(ctx context.Context, authorEmail string, payload models.TripPayload) (models.Trip, error)
	updateFromPayloadFn func(ctx context.Context, id int64, authorEmail string, payload models.TripPayload) (models.Trip, error)
	deleteFn            func(ctx context.Context, id int64, actorEmail string) error
}

func (f *fakeTripService) List(ctx context.Context, page models.PageRequest) (models.Page[models.Trip], error) {
	return f.listFn(ctx, page)
}

func (f *fakeTripService) Search(ctx context.Context, keyword string, page models.PageRequest) (models.Page[models.Trip], error) {
	return f.searchFn(ctx, keyword, page)
}

func (f *fakeTripService) ListMine(ctx context.Context, email string, page models.PageRequest) (models.Page[models.Trip], error) {
	return f.listMineFn(ctx, email, page)
}

func (f *fakeTripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	return f.getFn(ctx, id)
}

func (f *fakeTripService) Create(ctx context.Context, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	return f.createFn(ctx, authorEmail, draft, photos)
}

func (f *fakeTripService) Update(ctx context.Context, id int64, authorEmail string, draft models.TripDraft, photos []models.Upload) (models.Trip, error) {
	return f.updateFn(ctx, id, authorEmail, draft, photos)
}

func (f *fakeTripService) CreateFromPayload(ctx context.Context, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	return f.createFromPayloadFn(ctx, authorEmail, payload)
}

func (f *fakeTripService) UpdateFromPayload(ctx context.Context, id int64, authorEmail string, payload models.TripPayload) (models.Trip, error) {
	return f.updateFromPayloadFn(ctx, id, authorEmail, payload)
}

func (f *fakeTripService) Delete(ctx context.Context, id int64, actorEmail string) error {
	return f.deleteFn(ctx, id, actorEmail)
}

type fakeFileService struct {
	uploadOneFn  func(ctx context.Context, upload models.Upload) (string, error)
	uploadManyFn func(ctx context.Context, uploads []models.Upload) ([]string, error)
	openFn       func(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

func (f *fakeFileService) UploadOne(ctx context.Context, upload models.Upload) (string, error) {
	return f.uploadOneFn(ctx, upload)
}

func (f *fakeFileService) UploadMany(ctx context.Context, uploads []models.Upload) ([]string, error) {
	return f.uploadManyFn(ctx, uploads)
}

func (f *fakeFileService) Store(context.Context, []models.Upload) ([]models.StoredObject, error) {
	return nil, nil
}

func (f *fakeFileService) Discard(context.Context, []models.StoredObject) {}

func (f *fakeFileService) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	return f.openFn(ctx, name)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) Check(context.Context) error {
	return f.err
}

// aliceToken authenticates as alice in every handler test.
const aliceToken = "alice-token"

var alice = models.Identity{UserID: 1, Email: "alice@example.com", DisplayName: "Alice"}

// newTestServices returns services whose account fake accepts aliceToken.
func newTestServices() *service.Services {
	return &service.Services{
		AccountService: &fakeAccountService{
			authenticateFn: func(_ context.Context, token string) (models.Identity, error) {
				if token == aliceToken {
					return alice, nil
				}
				return models.Identity{}, &service.Error{Kind: service.KindInvalidToken, Message: "Invalid token"}
			},
		},
		TripService:    &fakeTripService{},
		FileService:    &fakeFileService{},
		AppInfoService: &fakeAppInfoService{version: "test"},
		HealthService:  &fakeHealthService{},
	}
}

func newRouterHandler(services *service.Services, cfg config.Server) *Handler {
	return NewHandler(services, cfg, logger.Nop())
}
