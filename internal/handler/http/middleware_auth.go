package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
)

// authenticate resolves the bearer token, if any, to the caller's identity
// and stores it in the request context. It never rejects a request: a
// missing, malformed, expired or orphaned token leaves the request
// anonymous, and protected routes are guarded by [requireAuth].
//
// Any identity set by an outer layer is cleared first, so the context only
// ever carries the identity proven by this request's own token.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.ClearIdentity(r.Context())

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		identity, err := h.services.AccountService.Authenticate(ctx, token)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("bearer token rejected, continuing anonymously")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuth answers 401 for requests without an authenticated caller.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.IdentityFromContext(r.Context()); !ok {
			writeError(w, r, ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
