package menu

import (
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/auth"
	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/categories", CategoriesHandler)
	r.Get("/items/{id}", ItemHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(auth.DefaultService(), cfg.SessionSecret))
		r.Use(middleware.RequireAdmin)
		r.Post("/categories", CreateCategoryHandler)
		r.Patch("/categories/{id}", UpdateCategoryHandler)
		r.Delete("/categories/{id}", DeleteCategoryHandler)
		r.Post("/items", CreateItemHandler)
		r.Patch("/items/{id}", UpdateItemHandler)
		r.Delete("/items/{id}", DeleteItemHandler)
	})

	return r
}
