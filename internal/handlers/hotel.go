package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type HotelHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewHotelHandler(db *gorm.DB, authHandler *auth.AuthHandler) *HotelHandler {
	return &HotelHandler{db: db, authHandler: authHandler}
}

type ListHotelsInput struct {
	PageQuery
	DestinationID uint    `query:"destinationId" doc:"Only hotels in this destination"`
	MinRating     float64 `query:"minRating" doc:"Minimum rating threshold"`
}

type ListHotelsOutput struct {
	Body struct {
		Items []models.Hotel `json:"items"`
		PageMeta
	}
}

func (h *HotelHandler) HandleList(ctx context.Context, input *ListHotelsInput) (*ListHotelsOutput, error) {
	query := h.db.Model(&models.Hotel{})
	if input.DestinationID != 0 {
		query = query.Where("destination_id = ?", input.DestinationID)
	}
	if input.MinRating > 0 {
		query = query.Where("rating >= ?", input.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count hotels: " + err.Error())
	}
	meta, offset := paginate(input.PageQuery, total)

	var items []models.Hotel
	if err := query.Preload("Destination").Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list hotels: " + err.Error())
	}

	res := &ListHotelsOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetHotelInput struct {
	ID uint `path:"id"`
}

type HotelOutput struct {
	Body models.Hotel
}

func (h *HotelHandler) HandleGet(ctx context.Context, input *GetHotelInput) (*HotelOutput, error) {
	var hotel models.Hotel
	if err := h.db.Preload("Destination").First(&hotel, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Hotel not found")
	}
	return &HotelOutput{Body: hotel}, nil
}

type GetHotelBySlugInput struct {
	Slug string `path:"slug"`
}

func (h *HotelHandler) HandleGetBySlug(ctx context.Context, input *GetHotelBySlugInput) (*HotelOutput, error) {
	var hotel models.Hotel
	if err := h.db.Preload("Destination").Where("slug = ?", input.Slug).First(&hotel).Error; err != nil {
		return nil, huma.Error404NotFound("Hotel not found")
	}
	return &HotelOutput{Body: hotel}, nil
}

type CreateHotelInput struct {
	auth.AuthInput
	Body struct {
		Name          string   `json:"name" required:"true"`
		Slug          string   `json:"slug" required:"true"`
		DestinationID uint     `json:"destination_id"`
		Rating        float64  `json:"rating"`
		Summary       string   `json:"summary"`
		Amenities     []string `json:"amenities,omitempty"`
		Address       string   `json:"address"`
		Lat           float64  `json:"lat"`
		Lng           float64  `json:"lng"`
		HeroImage     string   `json:"hero_image"`
		Gallery       []string `json:"gallery,omitempty"`
	}
}

func (h *HotelHandler) HandleCreate(ctx context.Context, input *CreateHotelInput) (*HotelOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}
	if input.Body.Name == "" || input.Body.Slug == "" {
		return nil, huma.Error400BadRequest("Name and slug are required")
	}
	if input.Body.DestinationID != 0 {
		var destination models.Destination
		if err := h.db.First(&destination, input.Body.DestinationID).Error; err != nil {
			return nil, huma.Error400BadRequest("Destination does not exist")
		}
	}

	hotel := models.Hotel{
		Name:          input.Body.Name,
		Slug:          input.Body.Slug,
		DestinationID: input.Body.DestinationID,
		Rating:        input.Body.Rating,
		Summary:       input.Body.Summary,
		Amenities:     input.Body.Amenities,
		Address:       input.Body.Address,
		Lat:           input.Body.Lat,
		Lng:           input.Body.Lng,
		HeroImage:     input.Body.HeroImage,
		Gallery:       input.Body.Gallery,
	}
	if err := h.db.Create(&hotel).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create hotel: " + err.Error())
	}
	return &HotelOutput{Body: hotel}, nil
}

type UpdateHotelInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Name          *string   `json:"name,omitempty"`
		Slug          *string   `json:"slug,omitempty"`
		DestinationID *uint     `json:"destination_id,omitempty"`
		Rating        *float64  `json:"rating,omitempty"`
		Summary       *string   `json:"summary,omitempty"`
		Amenities     *[]string `json:"amenities,omitempty"`
		Address       *string   `json:"address,omitempty"`
		Lat           *float64  `json:"lat,omitempty"`
		Lng           *float64  `json:"lng,omitempty"`
		HeroImage     *string   `json:"hero_image,omitempty"`
		Gallery       *[]string `json:"gallery,omitempty"`
	}
}

func (h *HotelHandler) HandleUpdate(ctx context.Context, input *UpdateHotelInput) (*HotelOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Hotel not found")
	}

	if input.Body.Name != nil {
		hotel.Name = *input.Body.Name
	}
	if input.Body.Slug != nil {
		hotel.Slug = *input.Body.Slug
	}
	if input.Body.DestinationID != nil {
		hotel.DestinationID = *input.Body.DestinationID
	}
	if input.Body.Rating != nil {
		hotel.Rating = *input.Body.Rating
	}
	if input.Body.Summary != nil {
		hotel.Summary = *input.Body.Summary
	}
	if input.Body.Amenities != nil {
		hotel.Amenities = *input.Body.Amenities
	}
	if input.Body.Address != nil {
		hotel.Address = *input.Body.Address
	}
	if input.Body.Lat != nil {
		hotel.Lat = *input.Body.Lat
	}
	if input.Body.Lng != nil {
		hotel.Lng = *input.Body.Lng
	}
	if input.Body.HeroImage != nil {
		hotel.HeroImage = *input.Body.HeroImage
	}
	if input.Body.Gallery != nil {
		hotel.Gallery = *input.Body.Gallery
	}

	if err := h.db.Save(&hotel).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update hotel: " + err.Error())
	}
	return &HotelOutput{Body: hotel}, nil
}

type DeleteHotelInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

// HandleDelete removes the hotel and every room it owns. Both deletes
// run in one transaction so a crash cannot leave orphaned rooms.
func (h *HotelHandler) HandleDelete(ctx context.Context, input *DeleteHotelInput) (*DeleteOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Hotel not found")
		}
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete hotel: " + err.Error())
	}

	res := &DeleteOutput{}
	res.Body.Deleted = true
	res.Body.ID = input.ID
	return res, nil
}
