package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type TripHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewTripHandler(db *gorm.DB, authHandler *auth.AuthHandler) *TripHandler {
	return &TripHandler{db: db, authHandler: authHandler}
}

type ListTripsInput struct {
	auth.AuthInput
	PageQuery
	Status string `query:"status" doc:"Exact status filter"`
}

type ListTripsOutput struct {
	Body struct {
		Items []models.Trip `json:"items"`
		PageMeta
	}
}

// HandleListMine lists the caller's own trips.
func (h *TripHandler) HandleListMine(ctx context.Context, input *ListTripsInput) (*ListTripsOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	query := h.db.Model(&models.Trip{}).Where("user_id = ?", userID)
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	return h.listTrips(query, input.PageQuery)
}

type AdminListTripsInput struct {
	auth.AuthInput
	PageQuery
	UserID uint   `query:"userId" doc:"Filter by owning user"`
	Status string `query:"status" doc:"Exact status filter"`
}

func (h *TripHandler) HandleAdminList(ctx context.Context, input *AdminListTripsInput) (*ListTripsOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	query := h.db.Model(&models.Trip{})
	if input.UserID != 0 {
		query = query.Where("user_id = ?", input.UserID)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	return h.listTrips(query, input.PageQuery)
}

func (h *TripHandler) listTrips(query *gorm.DB, page PageQuery) (*ListTripsOutput, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count trips: " + err.Error())
	}
	meta, offset := paginate(page, total)

	var items []models.Trip
	if err := query.Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list trips: " + err.Error())
	}

	res := &ListTripsOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetTripInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type TripOutput struct {
	Body models.Trip
}

// HandleGet enforces ownership: only the creating user may read a trip.
func (h *TripHandler) HandleGet(ctx context.Context, input *GetTripInput) (*TripOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := h.db.First(&trip, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Trip not found")
	}
	if trip.UserID != userID {
		return nil, huma.Error403Forbidden("You do not own this trip")
	}
	return &TripOutput{Body: trip}, nil
}

// HandleAdminGet bypasses the ownership check for back-office use.
func (h *TripHandler) HandleAdminGet(ctx context.Context, input *GetTripInput) (*TripOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := h.db.First(&trip, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Trip not found")
	}
	return &TripOutput{Body: trip}, nil
}

type CreateTripInput struct {
	auth.AuthInput
	Body struct {
		Title          string                 `json:"title" required:"true"`
		StartDate      *time.Time             `json:"start_date,omitempty"`
		EndDate        *time.Time             `json:"end_date,omitempty"`
		OriginCity     string                 `json:"origin_city"`
		Budget         float64                `json:"budget"`
		TravelerCount  int                    `json:"traveler_count"`
		TravelStyle    string                 `json:"travel_style"`
		DestinationIDs []uint                 `json:"destination_ids,omitempty"`
		Itinerary      []models.ItineraryItem `json:"itinerary,omitempty"`
	}
}

func (h *TripHandler) HandleCreate(ctx context.Context, input *CreateTripInput) (*TripOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if input.Body.Title == "" {
		return nil, huma.Error400BadRequest("Title is required")
	}

	trip := models.Trip{
		UserID:         userID,
		Title:          input.Body.Title,
		StartDate:      input.Body.StartDate,
		EndDate:        input.Body.EndDate,
		Status:         models.TripStatusDraft,
		OriginCity:     input.Body.OriginCity,
		Budget:         input.Body.Budget,
		TravelerCount:  input.Body.TravelerCount,
		TravelStyle:    input.Body.TravelStyle,
		DestinationIDs: input.Body.DestinationIDs,
		Itinerary:      input.Body.Itinerary,
	}
	if err := h.db.Create(&trip).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create trip: " + err.Error())
	}
	return &TripOutput{Body: trip}, nil
}

type UpdateTripInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Title          *string                 `json:"title,omitempty"`
		StartDate      *time.Time              `json:"start_date,omitempty"`
		EndDate        *time.Time              `json:"end_date,omitempty"`
		Status         *string                 `json:"status,omitempty" enum:"draft,booked,completed,canceled"`
		OriginCity     *string                 `json:"origin_city,omitempty"`
		Budget         *float64                `json:"budget,omitempty"`
		TravelerCount  *int                    `json:"traveler_count,omitempty"`
		TravelStyle    *string                 `json:"travel_style,omitempty"`
		DestinationIDs *[]uint                 `json:"destination_ids,omitempty"`
		Itinerary      *[]models.ItineraryItem `json:"itinerary,omitempty" doc:"Replaces the whole itinerary when present"`
	}
}

// HandleUpdate replaces the itinerary wholesale when the field is
// present; there are no per-item patch semantics.
func (h *TripHandler) HandleUpdate(ctx context.Context, input *UpdateTripInput) (*TripOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := h.db.First(&trip, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Trip not found")
	}
	if trip.UserID != userID {
		return nil, huma.Error403Forbidden("You do not own this trip")
	}

	if input.Body.Title != nil {
		trip.Title = *input.Body.Title
	}
	if input.Body.StartDate != nil {
		trip.StartDate = input.Body.StartDate
	}
	if input.Body.EndDate != nil {
		trip.EndDate = input.Body.EndDate
	}
	if input.Body.Status != nil {
		trip.Status = *input.Body.Status
	}
	if input.Body.OriginCity != nil {
		trip.OriginCity = *input.Body.OriginCity
	}
	if input.Body.Budget != nil {
		trip.Budget = *input.Body.Budget
	}
	if input.Body.TravelerCount != nil {
		trip.TravelerCount = *input.Body.TravelerCount
	}
	if input.Body.TravelStyle != nil {
		trip.TravelStyle = *input.Body.TravelStyle
	}
	if input.Body.DestinationIDs != nil {
		trip.DestinationIDs = *input.Body.DestinationIDs
	}
	if input.Body.Itinerary != nil {
		trip.Itinerary = *input.Body.Itinerary
	}

	if err := h.db.Save(&trip).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update trip: " + err.Error())
	}
	return &TripOutput{Body: trip}, nil
}
