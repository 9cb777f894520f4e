package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/database"
	"github.com/roamline/roamline-api/internal/handlers"
	"github.com/roamline/roamline-api/internal/notifier"
	"github.com/roamline/roamline-api/internal/payments"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Payment provider (nil when not configured; checkout rejects then)
	var provider payments.Provider
	if cfg.StripeConfigured() {
		provider = payments.NewStripeProvider(cfg.StripeSecretKey)
	} else {
		log.Printf("Stripe not configured; checkout is disabled")
	}

	// Ops notifier
	var n notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		n = discordNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	h := &handlers.Handlers{
		Auth:        authHandler,
		Destination: handlers.NewDestinationHandler(db, authHandler),
		Tour:        handlers.NewTourHandler(db, authHandler),
		Hotel:       handlers.NewHotelHandler(db, authHandler),
		Room:        handlers.NewRoomHandler(db, authHandler),
		Trip:        handlers.NewTripHandler(db, authHandler),
		Booking:     handlers.NewBookingHandler(db, authHandler),
		User:        handlers.NewUserHandler(db, authHandler),
		APIKey:      handlers.NewAPIKeyHandler(db, authHandler),
		Content:     handlers.NewContentHandler(db, authHandler),
		Checkout:    handlers.NewCheckoutHandler(db, provider, n, authHandler, cfg),
	}

	// Reap pending bookings whose checkout session never completed
	stop := make(chan struct{})
	defer close(stop)
	payments.StartSweep(db, time.Duration(cfg.PendingBookingTTLHours)*time.Hour, time.Hour, stop)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, h)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
