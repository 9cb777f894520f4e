package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		Currency:            "usd",
		DefaultNightlyRate:  150,
		FrontendURL:         "http://127.0.0.1:3000",
		CheckoutSuccessPath: "/checkout/success",
		CheckoutCancelPath:  "/checkout/cancel",
		StripeWebhookSecret: "whsec_test",
	}
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func authFor(t *testing.T, authHandler *auth.AuthHandler, userID uint) auth.AuthInput {
	t.Helper()
	token, err := authHandler.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return auth.AuthInput{Authorization: "Bearer " + token}
}

func asStatusError(err error, target *huma.StatusError) bool {
	return errors.As(err, target)
}
