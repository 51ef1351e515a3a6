package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/hdate-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/dates/today
//	GET    /api/v1/dates/gregorian/{date}
//	GET    /api/v1/dates/hebrew/{year}/{month}/{day}
//	GET    /api/v1/dates/jdn/{jdn}
//	GET    /api/v1/dates/range?start=&end=
//	GET    /api/v1/years/{year}
//	GET    /api/v1/years/{year}/calendar.ics
//	GET    /api/v1/custom-days
//	POST   /api/v1/custom-days        (API key)
//	DELETE /api/v1/custom-days/{id}   (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dates", func(r chi.Router) {
			r.Get("/today", handlers.GetToday)
			r.Get("/gregorian/{date}", handlers.GetGregorianDate)
			r.Get("/hebrew/{year}/{month}/{day}", handlers.GetHebrewDate)
			r.Get("/jdn/{jdn}", handlers.GetJDN)
			r.Get("/range", handlers.GetRange)
		})

		r.Route("/years/{year}", func(r chi.Router) {
			r.Get("/", handlers.GetYear)
			r.Get("/calendar.ics", handlers.GetYearFeed)
		})

		r.Route("/custom-days", func(r chi.Router) {
			r.Get("/", handlers.ListCustomDays)

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(cfg, logger))
				r.Post("/", handlers.CreateCustomDay)
				r.Delete("/{id}", handlers.DeleteCustomDay)
			})
		})
	})

	return r
}
