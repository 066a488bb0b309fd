package menu

import (
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "menu"); err != nil {
		log.Fatal("Failed to ensure schema menu: ", err)
	}

	if err := db.DB.AutoMigrate(&Category{}, &Item{}); err != nil {
		log.Fatal("Failed to auto-migrate menu tables: ", err)
	}
}
