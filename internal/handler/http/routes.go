package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer, h.withMetrics, h.withCORS, withGZip)
	router.Use(h.authenticate)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/trips", h.listTrips)
		r.Get("/api/trips/{id}", h.getTrip)

		r.Post("/api/files/upload", h.uploadFile)
		r.Post("/api/files/upload-multiple", h.uploadFiles)
		r.Get("/files/{name}", h.serveFile)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz", h.health)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/trips/my-trips", h.listMyTrips)
		r.Post("/api/trips", h.createTrip)
		r.Post("/api/trips/json", h.createTripJSON)
		r.Put("/api/trips/{id}", h.updateTrip)
		r.Put("/api/trips/{id}/json", h.updateTripJSON)
		r.Delete("/api/trips/{id}", h.deleteTrip)
	})

	return router
}
