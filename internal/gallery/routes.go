package gallery

import (
	"fmt"
	"log"
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/auth"
	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(cfg config.Config) http.Handler {
	presigner, err := NewS3Presigner(cfg)
	if err != nil {
		log.Printf("[gallery] S3 presigner unavailable: %v", err)
	}

	upload := &UploadHandler{Presigner: presigner}
	if cfg.S3Configured() {
		upload.PublicURL = func(key string) string {
			return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.S3Bucket, cfg.S3Region, key)
		}
	}

	r := chi.NewRouter()
	r.Get("/", ListHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(auth.DefaultService(), cfg.SessionSecret))
		r.Use(middleware.RequireAdmin)
		r.Post("/", CreateImageHandler)
		r.Patch("/{id}", UpdateImageHandler)
		r.Delete("/{id}", DeleteImageHandler)
		r.Method(http.MethodPost, "/uploads", upload)
	})

	return r
}
