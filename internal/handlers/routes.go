package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/roamline/roamline-api/internal/auth"
)

type Handlers struct {
	Auth        *auth.AuthHandler
	Destination *DestinationHandler
	Tour        *TourHandler
	Hotel       *HotelHandler
	Room        *RoomHandler
	Trip        *TripHandler
	Booking     *BookingHandler
	User        *UserHandler
	APIKey      *APIKeyHandler
	Content     *ContentHandler
	Checkout    *CheckoutHandler
}

func RegisterRoutes(r *chi.Mux, h *Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Roamline API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
		"apiKeyAuth": {
			Type: "apiKey",
			In:   "header",
			Name: "X-API-Key",
		},
	}
	api := humachi.New(r, config)

	// Public routes outside huma: health, OAuth redirects, webhook raw body.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/auth/google/login", h.Auth.HandleGoogleLogin)
	r.Get("/auth/google/callback", h.Auth.HandleGoogleCallback)
	r.Post("/api/stripe/webhook", h.Checkout.HandleStripeWebhook)

	// Auth
	huma.Post(api, "/api/auth/signup", h.Auth.HandleSignup)
	huma.Post(api, "/api/auth/login", h.Auth.HandleLogin)

	// Destinations
	huma.Get(api, "/api/destinations", h.Destination.HandleList)
	huma.Get(api, "/api/destinations/by-slug/{slug}", h.Destination.HandleGetBySlug)
	huma.Get(api, "/api/destinations/{id}", h.Destination.HandleGet)
	huma.Post(api, "/api/destinations", h.Destination.HandleCreate)
	huma.Patch(api, "/api/destinations/{id}", h.Destination.HandleUpdate)
	huma.Delete(api, "/api/destinations/{id}", h.Destination.HandleDelete)

	// Tours
	huma.Get(api, "/api/tours", h.Tour.HandleList)
	huma.Get(api, "/api/tours/by-slug/{slug}", h.Tour.HandleGetBySlug)
	huma.Get(api, "/api/tours/{id}", h.Tour.HandleGet)
	huma.Post(api, "/api/tours", h.Tour.HandleCreate)
	huma.Patch(api, "/api/tours/{id}", h.Tour.HandleUpdate)
	huma.Delete(api, "/api/tours/{id}", h.Tour.HandleDelete)

	// Hotels
	huma.Get(api, "/api/hotels", h.Hotel.HandleList)
	huma.Get(api, "/api/hotels/by-slug/{slug}", h.Hotel.HandleGetBySlug)
	huma.Get(api, "/api/hotels/{id}", h.Hotel.HandleGet)
	huma.Post(api, "/api/hotels", h.Hotel.HandleCreate)
	huma.Patch(api, "/api/hotels/{id}", h.Hotel.HandleUpdate)
	huma.Delete(api, "/api/hotels/{id}", h.Hotel.HandleDelete)

	// Rooms
	huma.Get(api, "/api/rooms/hotel/{hotelId}", h.Room.HandleListByHotel)
	huma.Get(api, "/api/rooms/{id}", h.Room.HandleGet)
	huma.Post(api, "/api/rooms", h.Room.HandleCreate)
	huma.Patch(api, "/api/rooms/{id}", h.Room.HandleUpdate)
	huma.Delete(api, "/api/rooms/{id}", h.Room.HandleDelete)

	// Trips
	huma.Get(api, "/api/trips", h.Trip.HandleListMine)
	huma.Get(api, "/api/trips/my", h.Trip.HandleListMine)
	huma.Get(api, "/api/trips/admin", h.Trip.HandleAdminList)
	huma.Get(api, "/api/trips/admin/{id}", h.Trip.HandleAdminGet)
	huma.Get(api, "/api/trips/{id}", h.Trip.HandleGet)
	huma.Post(api, "/api/trips", h.Trip.HandleCreate)
	huma.Patch(api, "/api/trips/{id}", h.Trip.HandleUpdate)

	// Bookings
	huma.Get(api, "/api/bookings", h.Booking.HandleListMine)
	huma.Get(api, "/api/bookings/my", h.Booking.HandleListMine)
	huma.Get(api, "/api/bookings/admin", h.Booking.HandleAdminList)
	huma.Get(api, "/api/bookings/{id}", h.Booking.HandleGet)
	huma.Patch(api, "/api/bookings/{id}/status", h.Booking.HandleUpdateStatus)

	// Users
	huma.Get(api, "/api/users/me", h.User.HandleMe)
	huma.Get(api, "/api/users", h.User.HandleList)
	huma.Get(api, "/api/users/{id}", h.User.HandleGet)

	// API keys
	huma.Post(api, "/api/api-keys", h.APIKey.HandleCreate)
	huma.Get(api, "/api/api-keys", h.APIKey.HandleList)
	huma.Delete(api, "/api/api-keys/{id}", h.APIKey.HandleDelete)

	// Content collections
	huma.Get(api, "/api/content-blocks", h.Content.HandleListContentBlocks)
	huma.Put(api, "/api/content-blocks", h.Content.HandleUpsertContentBlock)
	huma.Get(api, "/api/categories", h.Content.HandleListCategories)
	huma.Get(api, "/api/trip-templates", h.Content.HandleListTripTemplates)
	huma.Get(api, "/api/trip-templates/by-slug/{slug}", h.Content.HandleGetTripTemplate)
	huma.Get(api, "/api/concierge-starters", h.Content.HandleListConciergeStarters)
	huma.Get(api, "/api/loyalty-tiers", h.Content.HandleListLoyaltyTiers)
	huma.Get(api, "/api/benefits", h.Content.HandleListBenefits)
	huma.Get(api, "/api/rewards", h.Content.HandleListRewards)

	// Checkout
	huma.Post(api, "/api/stripe/create-checkout-session", h.Checkout.HandleCreateCheckoutSession)
}
