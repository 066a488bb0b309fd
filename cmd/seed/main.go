package main

import (
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/gallery"
	"github.com/BellaCucina/bistro-backend/internal/menu"
	"github.com/BellaCucina/bistro-backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	menu.Init()
	gallery.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
