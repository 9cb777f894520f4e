package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type TourHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewTourHandler(db *gorm.DB, authHandler *auth.AuthHandler) *TourHandler {
	return &TourHandler{db: db, authHandler: authHandler}
}

type ListToursInput struct {
	PageQuery
	DestinationID uint    `query:"destinationId" doc:"Only tours visiting this destination"`
	MinDays       int     `query:"minDays" doc:"Minimum duration in days"`
	MaxPrice      float64 `query:"maxPrice" doc:"Maximum starting price"`
}

type ListToursOutput struct {
	Body struct {
		Items []models.Tour `json:"items"`
		PageMeta
	}
}

func (h *TourHandler) HandleList(ctx context.Context, input *ListToursInput) (*ListToursOutput, error) {
	query := h.db.Model(&models.Tour{})
	if input.DestinationID != 0 {
		query = query.Joins("JOIN tour_destinations td ON td.tour_id = tours.id").
			Where("td.destination_id = ?", input.DestinationID)
	}
	if input.MinDays > 0 {
		query = query.Where("duration_days >= ?", input.MinDays)
	}
	if input.MaxPrice > 0 {
		query = query.Where("price_from <= ?", input.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count tours: " + err.Error())
	}
	meta, offset := paginate(input.PageQuery, total)

	var items []models.Tour
	if err := query.Preload("Destinations").Order("tours.id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list tours: " + err.Error())
	}

	res := &ListToursOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetTourInput struct {
	ID uint `path:"id"`
}

type TourOutput struct {
	Body models.Tour
}

func (h *TourHandler) HandleGet(ctx context.Context, input *GetTourInput) (*TourOutput, error) {
	var tour models.Tour
	if err := h.db.Preload("Destinations").First(&tour, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Tour not found")
	}
	return &TourOutput{Body: tour}, nil
}

type GetTourBySlugInput struct {
	Slug string `path:"slug"`
}

func (h *TourHandler) HandleGetBySlug(ctx context.Context, input *GetTourBySlugInput) (*TourOutput, error) {
	var tour models.Tour
	if err := h.db.Preload("Destinations").Where("slug = ?", input.Slug).First(&tour).Error; err != nil {
		return nil, huma.Error404NotFound("Tour not found")
	}
	return &TourOutput{Body: tour}, nil
}

type CreateTourInput struct {
	auth.AuthInput
	Body struct {
		Title          string           `json:"title" required:"true"`
		Slug           string           `json:"slug" required:"true"`
		Summary        string           `json:"summary"`
		DestinationIDs []uint           `json:"destination_ids,omitempty"`
		DurationDays   int              `json:"duration_days"`
		PriceFrom      float64          `json:"price_from"`
		Itinerary      []models.TourDay `json:"itinerary,omitempty"`
		Highlights     []string         `json:"highlights,omitempty"`
		HeroImage      string           `json:"hero_image"`
		Gallery        []string         `json:"gallery,omitempty"`
	}
}

func (h *TourHandler) HandleCreate(ctx context.Context, input *CreateTourInput) (*TourOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}
	if input.Body.Title == "" || input.Body.Slug == "" {
		return nil, huma.Error400BadRequest("Title and slug are required")
	}

	destinations, err := h.loadDestinations(input.Body.DestinationIDs)
	if err != nil {
		return nil, err
	}

	tour := models.Tour{
		Title:        input.Body.Title,
		Slug:         input.Body.Slug,
		Summary:      input.Body.Summary,
		Destinations: destinations,
		DurationDays: input.Body.DurationDays,
		PriceFrom:    input.Body.PriceFrom,
		Itinerary:    input.Body.Itinerary,
		Highlights:   input.Body.Highlights,
		HeroImage:    input.Body.HeroImage,
		Gallery:      input.Body.Gallery,
	}
	if err := h.db.Create(&tour).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create tour: " + err.Error())
	}
	return &TourOutput{Body: tour}, nil
}

type UpdateTourInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Title          *string           `json:"title,omitempty"`
		Slug           *string           `json:"slug,omitempty"`
		Summary        *string           `json:"summary,omitempty"`
		DestinationIDs *[]uint           `json:"destination_ids,omitempty"`
		DurationDays   *int              `json:"duration_days,omitempty"`
		PriceFrom      *float64          `json:"price_from,omitempty"`
		Itinerary      *[]models.TourDay `json:"itinerary,omitempty"`
		Highlights     *[]string         `json:"highlights,omitempty"`
		HeroImage      *string           `json:"hero_image,omitempty"`
		Gallery        *[]string         `json:"gallery,omitempty"`
	}
}

func (h *TourHandler) HandleUpdate(ctx context.Context, input *UpdateTourInput) (*TourOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var tour models.Tour
	if err := h.db.First(&tour, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Tour not found")
	}

	if input.Body.Title != nil {
		tour.Title = *input.Body.Title
	}
	if input.Body.Slug != nil {
		tour.Slug = *input.Body.Slug
	}
	if input.Body.Summary != nil {
		tour.Summary = *input.Body.Summary
	}
	if input.Body.DurationDays != nil {
		tour.DurationDays = *input.Body.DurationDays
	}
	if input.Body.PriceFrom != nil {
		tour.PriceFrom = *input.Body.PriceFrom
	}
	if input.Body.Itinerary != nil {
		tour.Itinerary = *input.Body.Itinerary
	}
	if input.Body.Highlights != nil {
		tour.Highlights = *input.Body.Highlights
	}
	if input.Body.HeroImage != nil {
		tour.HeroImage = *input.Body.HeroImage
	}
	if input.Body.Gallery != nil {
		tour.Gallery = *input.Body.Gallery
	}

	if err := h.db.Save(&tour).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update tour: " + err.Error())
	}

	if input.Body.DestinationIDs != nil {
		destinations, err := h.loadDestinations(*input.Body.DestinationIDs)
		if err != nil {
			return nil, err
		}
		if err := h.db.Model(&tour).Association("Destinations").Replace(destinations); err != nil {
			return nil, huma.Error500InternalServerError("Failed to update tour destinations: " + err.Error())
		}
		tour.Destinations = destinations
	}

	return &TourOutput{Body: tour}, nil
}

type DeleteTourInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *TourHandler) HandleDelete(ctx context.Context, input *DeleteTourInput) (*DeleteOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var tour models.Tour
	if err := h.db.First(&tour, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Tour not found")
		}
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	if err := h.db.Select("Destinations").Delete(&tour).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete tour: " + err.Error())
	}

	res := &DeleteOutput{}
	res.Body.Deleted = true
	res.Body.ID = input.ID
	return res, nil
}

func (h *TourHandler) loadDestinations(ids []uint) ([]models.Destination, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var destinations []models.Destination
	if err := h.db.Find(&destinations, ids).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load destinations: " + err.Error())
	}
	if len(destinations) != len(ids) {
		return nil, huma.Error400BadRequest("One or more destination ids do not exist")
	}
	return destinations, nil
}
