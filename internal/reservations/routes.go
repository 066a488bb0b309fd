package reservations

import (
	"net/http"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/auth"
	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func SetupRoutes(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	// Public intake is throttled per IP: a handful of submissions per minute
	// is plenty for a reservation form.
	r.With(middleware.Throttle(rate.Every(12*time.Second), 3)).
		Post("/", IntakeHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(auth.DefaultService(), cfg.SessionSecret))
		r.Use(middleware.RequireAdmin)
		r.Get("/", ListHandler)
		r.Patch("/{id}/status", UpdateStatusHandler)
		r.Delete("/{id}", DeleteHandler)
	})

	return r
}
