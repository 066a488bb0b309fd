package auth

import (
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(cfg config.Config) http.Handler {
	svc := DefaultService()
	h := NewHandler(svc, cfg)

	r := chi.NewRouter()
	r.Post("/register", h.RegisterHandler)
	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(svc, cfg.SessionSecret))
		r.With(middleware.RequireAuth).Get("/me", h.MeHandler)
		r.With(middleware.RequireAuth).Post("/password", h.UpdatePasswordHandler)
	})

	return r
}
