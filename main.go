package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/auth"
	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/gallery"
	"github.com/BellaCucina/bistro-backend/internal/menu"
	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"github.com/BellaCucina/bistro-backend/internal/reservations"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db.Connect()

	auth.Init()
	menu.Init()
	gallery.Init()
	reservations.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes(cfg))
	r.Mount("/menu", menu.SetupRoutes(cfg))
	r.Mount("/gallery", gallery.SetupRoutes(cfg))
	r.Mount("/reservations", reservations.SetupRoutes(cfg))

	log.Printf("Server listening on port :%s...", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
