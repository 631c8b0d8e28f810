package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/nousrire/backend/internal/middleware"
	"github.com/nousrire/backend/internal/middleware/metrics"
	"github.com/nousrire/backend/internal/setup"
)

// New creates and configures the chi router with all routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// JSON API only, no scripts/styles needed
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, apiCSP))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Stored images are public by URL
	mediaServer := http.StripPrefix("/media/", http.FileServer(http.Dir(deps.Media.Root())))
	r.Handle("/media/*", mediaServer)

	r.Route("/v1", func(r chi.Router) {
		// Public marketing-site surface
		r.Get("/news", h.GetNews)
		r.Get("/events", h.GetEvents)
		r.Post("/volunteers", h.SubmitVolunteer)

		r.Route("/admin", func(r chi.Router) {
			// Session gate endpoints stay outside the gate itself
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			// Gated admin surface
			r.Group(func(r chi.Router) {
				r.Use(deps.Session.AdminOnly())

				r.Post("/news", h.CreateNews)
				r.Delete("/news/{id}", h.DeleteNews)

				r.Post("/events", h.CreateEvent)
				r.Put("/events/{id}", h.UpdateEvent)
				r.Delete("/events/{id}", h.DeleteEvent)

				r.Get("/volunteers", h.GetVolunteers)
				r.Delete("/volunteers/{id}", h.DeleteVolunteer)
			})
		})
	})

	return r
}
