package reservations

import (
	"log"

	"github.com/BellaCucina/bistro-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "reservations"); err != nil {
		log.Fatal("Failed to ensure schema reservations: ", err)
	}

	if err := db.DB.AutoMigrate(&Reservation{}); err != nil {
		log.Fatal("Failed to auto-migrate reservations table: ", err)
	}
}
