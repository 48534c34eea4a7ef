package infra

import (
	"log"

	"gorm.io/gorm"

	"tripmind/internal/models/db_models"
)

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Itinerary{},
		&db_models.ExpertProfile{},
		&db_models.ExpertBooking{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
