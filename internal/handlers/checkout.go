package handlers

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/models"
	"github.com/roamline/roamline-api/internal/notifier"
	"github.com/roamline/roamline-api/internal/payments"
	"github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

// CheckoutHandler turns a trip's bookable itinerary items into pending
// bookings plus a provider checkout session, and reconciles booking
// status from the provider's webhook events.
type CheckoutHandler struct {
	db          *gorm.DB
	provider    payments.Provider
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
	cfg         *config.Config
}

func NewCheckoutHandler(db *gorm.DB, provider payments.Provider, n notifier.Notifier, authHandler *auth.AuthHandler, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{db: db, provider: provider, notifier: n, authHandler: authHandler, cfg: cfg}
}

type CheckoutItem struct {
	Type      string `json:"type" enum:"tour,hotel"`
	ProductID string `json:"product_id"`
}

// DroppedItem names an itinerary entry that was excluded from billing
// and why. Never silent: the caller sees every exclusion.
type DroppedItem struct {
	Type      string `json:"type"`
	ProductID string `json:"product_id"`
	Reason    string `json:"reason"`
}

type CreateCheckoutSessionInput struct {
	auth.AuthInput
	Body struct {
		TripID     uint           `json:"trip_id" required:"true"`
		Items      []CheckoutItem `json:"items,omitempty" doc:"Explicit subset; defaults to the trip's bookable itinerary items"`
		SuccessURL string         `json:"success_url,omitempty"`
		CancelURL  string         `json:"cancel_url,omitempty"`
	}
}

type CreateCheckoutSessionOutput struct {
	Body struct {
		URL        string        `json:"url"`
		SessionID  string        `json:"session_id"`
		BookingIDs []uint        `json:"booking_ids"`
		Dropped    []DroppedItem `json:"dropped,omitempty"`
	}
}

type resolvedItem struct {
	item   CheckoutItem
	name   string
	amount int64 // minor units
}

func (h *CheckoutHandler) HandleCreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CreateCheckoutSessionOutput, error) {
	if h.provider == nil {
		return nil, huma.Error400BadRequest("Payment provider is not configured")
	}

	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := h.db.First(&trip, input.Body.TripID).Error; err != nil {
		return nil, huma.Error404NotFound("Trip not found")
	}
	if trip.UserID != userID {
		return nil, huma.Error403Forbidden("You do not own this trip")
	}

	items := input.Body.Items
	if len(items) == 0 {
		for _, entry := range trip.Itinerary {
			if entry.Type == models.ItemTypeTour || entry.Type == models.ItemTypeHotel {
				items = append(items, CheckoutItem{Type: entry.Type, ProductID: entry.ProductID})
			}
		}
	}
	if len(items) == 0 {
		return nil, huma.Error400BadRequest("Trip has no bookable items")
	}

	var resolved []resolvedItem
	var dropped []DroppedItem
	for _, item := range items {
		name, amount, err := h.resolvePrice(item)
		if err != nil {
			return nil, err
		}
		if amount <= 0 {
			dropped = append(dropped, DroppedItem{Type: item.Type, ProductID: item.ProductID, Reason: "non-positive price"})
			continue
		}
		resolved = append(resolved, resolvedItem{item: item, name: name, amount: amount})
	}
	if len(resolved) == 0 {
		return nil, huma.Error400BadRequest("No billable items left after price resolution")
	}

	var bookings []models.Booking
	err = h.db.Transaction(func(tx *gorm.DB) error {
		for _, ri := range resolved {
			booking := models.Booking{
				UserID:      userID,
				TripID:      trip.ID,
				ProductType: ri.item.Type,
				ProductID:   ri.item.ProductID,
				Price:       float64(ri.amount) / 100,
				Currency:    h.cfg.Currency,
				Status:      models.BookingStatusPending,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}
			bookings = append(bookings, booking)
		}
		return nil
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create bookings: " + err.Error())
	}

	bookingIDs := make([]uint, 0, len(bookings))
	idStrings := make([]string, 0, len(bookings))
	lineItems := make([]payments.LineItem, 0, len(bookings))
	for i, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
		idStrings = append(idStrings, strconv.FormatUint(uint64(booking.ID), 10))
		lineItems = append(lineItems, payments.LineItem{
			Name:        resolved[i].name,
			Description: fmt.Sprintf("%s:%s", booking.ProductType, booking.ProductID),
			Currency:    h.cfg.Currency,
			UnitAmount:  resolved[i].amount,
		})
	}

	successURL := input.Body.SuccessURL
	if successURL == "" {
		successURL = h.cfg.CheckoutSuccessURL(trip.ID)
	}
	cancelURL := input.Body.CancelURL
	if cancelURL == "" {
		cancelURL = h.cfg.CheckoutCancelURL(trip.ID)
	}

	session, err := h.provider.CreateCheckoutSession(ctx, &payments.SessionParams{
		SuccessURL:        successURL,
		CancelURL:         cancelURL,
		ClientReferenceID: uuid.NewString(),
		LineItems:         lineItems,
		Metadata: map[string]string{
			"userId":     strconv.FormatUint(uint64(userID), 10),
			"tripId":     strconv.FormatUint(uint64(trip.ID), 10),
			"bookingIds": strings.Join(idStrings, ","),
		},
	})
	if err != nil {
		// The pending bookings stay behind with no payment id; the
		// stale-pending sweep reaps them.
		return nil, huma.Error500InternalServerError("Failed to create checkout session: " + err.Error())
	}

	res := &CreateCheckoutSessionOutput{}
	res.Body.URL = session.URL
	res.Body.SessionID = session.ID
	res.Body.BookingIDs = bookingIDs
	res.Body.Dropped = dropped
	return res, nil
}

// resolvePrice returns the display name and minor-unit amount for one
// bookable item. Hotel items resolve as a room first, then fall back to
// the hotel itself at the configured default nightly rate.
func (h *CheckoutHandler) resolvePrice(item CheckoutItem) (string, int64, error) {
	switch item.Type {
	case models.ItemTypeTour:
		id, err := strconv.ParseUint(item.ProductID, 10, 64)
		if err != nil {
			return "", 0, huma.Error404NotFound(fmt.Sprintf("Tour %q not found", item.ProductID))
		}
		var tour models.Tour
		if err := h.db.First(&tour, id).Error; err != nil {
			return "", 0, huma.Error404NotFound(fmt.Sprintf("Tour %q not found", item.ProductID))
		}
		return tour.Title, int64(math.Round(tour.PriceFrom * 100)), nil
	case models.ItemTypeHotel:
		id, err := strconv.ParseUint(item.ProductID, 10, 64)
		if err != nil {
			return "", 0, huma.Error404NotFound(fmt.Sprintf("Room or hotel %q not found", item.ProductID))
		}
		var room models.Room
		if err := h.db.First(&room, id).Error; err == nil {
			return room.Name, int64(math.Round(room.PricePerNight * 100)), nil
		}
		var hotel models.Hotel
		if err := h.db.First(&hotel, id).Error; err == nil {
			return hotel.Name, int64(math.Round(h.cfg.DefaultNightlyRate * 100)), nil
		}
		return "", 0, huma.Error404NotFound(fmt.Sprintf("Room or hotel %q not found", item.ProductID))
	default:
		return "", 0, huma.Error400BadRequest(fmt.Sprintf("Item type %q is not bookable", item.Type))
	}
}

// HandleSessionCompleted confirms every booking named in the session
// metadata and records the session id as the payment id. Safe to call
// again for the same session; canceled bookings are never resurrected.
func (h *CheckoutHandler) HandleSessionCompleted(session *stripe.CheckoutSession) {
	ids := metadataBookingIDs(session.Metadata)
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		err := h.db.Model(&models.Booking{}).
			Where("id = ? AND status <> ?", id, models.BookingStatusCanceled).
			Updates(map[string]interface{}{
				"status":     models.BookingStatusConfirmed,
				"payment_id": session.ID,
			}).Error
		if err != nil {
			log.Printf("Failed to confirm booking %d: %v", id, err)
		}
	}
	h.notifyReconciliation(session.ID, models.BookingStatusConfirmed, ids)
}

// HandleSessionExpired cancels the session's bookings. Only pending
// rows are touched, so a prior completion is never undone.
func (h *CheckoutHandler) HandleSessionExpired(session *stripe.CheckoutSession) {
	ids := metadataBookingIDs(session.Metadata)
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		err := h.db.Model(&models.Booking{}).
			Where("id = ? AND status = ?", id, models.BookingStatusPending).
			Update("status", models.BookingStatusCanceled).Error
		if err != nil {
			log.Printf("Failed to cancel booking %d: %v", id, err)
		}
	}
	h.notifyReconciliation(session.ID, models.BookingStatusCanceled, ids)
}

func (h *CheckoutHandler) notifyReconciliation(sessionID, status string, ids []uint) {
	if h.notifier == nil {
		return
	}
	var bookings []models.Booking
	if err := h.db.Where("id IN ? AND status = ?", ids, status).Find(&bookings).Error; err != nil || len(bookings) == 0 {
		return
	}
	if err := h.notifier.NotifyBookings(sessionID, status, bookings); err != nil {
		log.Printf("Failed to send booking notification: %v", err)
	}
}

func metadataBookingIDs(metadata map[string]string) []uint {
	raw, ok := metadata["bookingIds"]
	if !ok || raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
