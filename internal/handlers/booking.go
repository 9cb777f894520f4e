package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type BookingHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewBookingHandler(db *gorm.DB, authHandler *auth.AuthHandler) *BookingHandler {
	return &BookingHandler{db: db, authHandler: authHandler}
}

type ListBookingsInput struct {
	auth.AuthInput
	PageQuery
	TripID uint   `query:"tripId" doc:"Filter by trip"`
	Status string `query:"status" doc:"Exact status filter"`
}

type ListBookingsOutput struct {
	Body struct {
		Items []models.Booking `json:"items"`
		PageMeta
	}
}

// HandleListMine lists the caller's own bookings.
func (h *BookingHandler) HandleListMine(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	query := h.db.Model(&models.Booking{}).Where("user_id = ?", userID)
	if input.TripID != 0 {
		query = query.Where("trip_id = ?", input.TripID)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	return h.listBookings(query, input.PageQuery)
}

type AdminListBookingsInput struct {
	auth.AuthInput
	PageQuery
	UserID uint   `query:"userId" doc:"Filter by user"`
	TripID uint   `query:"tripId" doc:"Filter by trip"`
	Status string `query:"status" doc:"Exact status filter"`
}

func (h *BookingHandler) HandleAdminList(ctx context.Context, input *AdminListBookingsInput) (*ListBookingsOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	query := h.db.Model(&models.Booking{})
	if input.UserID != 0 {
		query = query.Where("user_id = ?", input.UserID)
	}
	if input.TripID != 0 {
		query = query.Where("trip_id = ?", input.TripID)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	return h.listBookings(query, input.PageQuery)
}

func (h *BookingHandler) listBookings(query *gorm.DB, page PageQuery) (*ListBookingsOutput, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count bookings: " + err.Error())
	}
	meta, offset := paginate(page, total)

	var items []models.Booking
	if err := query.Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list bookings: " + err.Error())
	}

	res := &ListBookingsOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetBookingInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type BookingOutput struct {
	Body models.Booking
}

// HandleGet is owner-or-admin scoped.
func (h *BookingHandler) HandleGet(ctx context.Context, input *GetBookingInput) (*BookingOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := h.db.First(&booking, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Booking not found")
	}
	if booking.UserID != userID {
		if _, err := h.authHandler.RequireAdmin(userID); err != nil {
			return nil, huma.Error403Forbidden("You do not own this booking")
		}
	}
	return &BookingOutput{Body: booking}, nil
}

type UpdateBookingStatusInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Status    string `json:"status" required:"true" enum:"pending,confirmed,canceled"`
		PaymentID string `json:"payment_id,omitempty"`
	}
}

// HandleUpdateStatus is the admin escape hatch; normal transitions are
// driven by webhook reconciliation.
func (h *BookingHandler) HandleUpdateStatus(ctx context.Context, input *UpdateBookingStatusInput) (*BookingOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	switch input.Body.Status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCanceled:
	default:
		return nil, huma.Error400BadRequest("Unknown booking status")
	}

	var booking models.Booking
	if err := h.db.First(&booking, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Booking not found")
	}

	booking.Status = input.Body.Status
	if input.Body.PaymentID != "" {
		booking.PaymentID = input.Body.PaymentID
	}
	if err := h.db.Save(&booking).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update booking: " + err.Error())
	}
	return &BookingOutput{Body: booking}, nil
}
