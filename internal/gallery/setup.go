package gallery

import (
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "gallery"); err != nil {
		log.Fatal("Failed to ensure schema gallery: ", err)
	}

	if err := db.DB.AutoMigrate(&Image{}); err != nil {
		log.Fatal("Failed to auto-migrate gallery table: ", err)
	}
}
