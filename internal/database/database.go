package database

import (
	"log"

	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}

// Migrate is split out so tests and the seed command can run it against
// their own connections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Destination{},
		&models.Tour{},
		&models.Hotel{},
		&models.Room{},
		&models.Trip{},
		&models.Booking{},
		&models.ContentBlock{},
		&models.Category{},
		&models.TripTemplate{},
		&models.ConciergeStarter{},
		&models.LoyaltyTier{},
		&models.Benefit{},
		&models.Reward{},
	)
}
