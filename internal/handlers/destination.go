package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type DestinationHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewDestinationHandler(db *gorm.DB, authHandler *auth.AuthHandler) *DestinationHandler {
	return &DestinationHandler{db: db, authHandler: authHandler}
}

type ListDestinationsInput struct {
	PageQuery
	Continent string `query:"continent" doc:"Exact continent filter"`
	Country   string `query:"country" doc:"Exact country filter"`
}

type ListDestinationsOutput struct {
	Body struct {
		Items []models.Destination `json:"items"`
		PageMeta
	}
}

func (h *DestinationHandler) HandleList(ctx context.Context, input *ListDestinationsInput) (*ListDestinationsOutput, error) {
	query := h.db.Model(&models.Destination{})
	if input.Continent != "" {
		query = query.Where("continent = ?", input.Continent)
	}
	if input.Country != "" {
		query = query.Where("country = ?", input.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count destinations: " + err.Error())
	}
	meta, offset := paginate(input.PageQuery, total)

	var items []models.Destination
	if err := query.Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list destinations: " + err.Error())
	}

	res := &ListDestinationsOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetDestinationInput struct {
	ID uint `path:"id"`
}

type DestinationOutput struct {
	Body models.Destination
}

func (h *DestinationHandler) HandleGet(ctx context.Context, input *GetDestinationInput) (*DestinationOutput, error) {
	var destination models.Destination
	if err := h.db.First(&destination, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}
	return &DestinationOutput{Body: destination}, nil
}

type GetDestinationBySlugInput struct {
	Slug string `path:"slug"`
}

func (h *DestinationHandler) HandleGetBySlug(ctx context.Context, input *GetDestinationBySlugInput) (*DestinationOutput, error) {
	var destination models.Destination
	if err := h.db.Where("slug = ?", input.Slug).First(&destination).Error; err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}
	return &DestinationOutput{Body: destination}, nil
}

type CreateDestinationInput struct {
	auth.AuthInput
	Body struct {
		Name      string   `json:"name" required:"true"`
		Slug      string   `json:"slug" required:"true" doc:"URL slug, unique"`
		Continent string   `json:"continent"`
		Country   string   `json:"country"`
		Tagline   string   `json:"tagline"`
		Summary   string   `json:"summary"`
		Tags      []string `json:"tags,omitempty"`
		HeroImage string   `json:"hero_image"`
		Gallery   []string `json:"gallery,omitempty"`
	}
}

func (h *DestinationHandler) HandleCreate(ctx context.Context, input *CreateDestinationInput) (*DestinationOutput, error) {
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

	destination := models.Destination{
		Name:      input.Body.Name,
		Slug:      input.Body.Slug,
		Continent: input.Body.Continent,
		Country:   input.Body.Country,
		Tagline:   input.Body.Tagline,
		Summary:   input.Body.Summary,
		Tags:      input.Body.Tags,
		HeroImage: input.Body.HeroImage,
		Gallery:   input.Body.Gallery,
	}
	if err := h.db.Create(&destination).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create destination: " + err.Error())
	}
	return &DestinationOutput{Body: destination}, nil
}

type UpdateDestinationInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Name      *string   `json:"name,omitempty"`
		Slug      *string   `json:"slug,omitempty"`
		Continent *string   `json:"continent,omitempty"`
		Country   *string   `json:"country,omitempty"`
		Tagline   *string   `json:"tagline,omitempty"`
		Summary   *string   `json:"summary,omitempty"`
		Tags      *[]string `json:"tags,omitempty"`
		HeroImage *string   `json:"hero_image,omitempty"`
		Gallery   *[]string `json:"gallery,omitempty"`
	}
}

func (h *DestinationHandler) HandleUpdate(ctx context.Context, input *UpdateDestinationInput) (*DestinationOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var destination models.Destination
	if err := h.db.First(&destination, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}

	if input.Body.Name != nil {
		destination.Name = *input.Body.Name
	}
	if input.Body.Slug != nil {
		destination.Slug = *input.Body.Slug
	}
	if input.Body.Continent != nil {
		destination.Continent = *input.Body.Continent
	}
	if input.Body.Country != nil {
		destination.Country = *input.Body.Country
	}
	if input.Body.Tagline != nil {
		destination.Tagline = *input.Body.Tagline
	}
	if input.Body.Summary != nil {
		destination.Summary = *input.Body.Summary
	}
	if input.Body.Tags != nil {
		destination.Tags = *input.Body.Tags
	}
	if input.Body.HeroImage != nil {
		destination.HeroImage = *input.Body.HeroImage
	}
	if input.Body.Gallery != nil {
		destination.Gallery = *input.Body.Gallery
	}

	if err := h.db.Save(&destination).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update destination: " + err.Error())
	}
	return &DestinationOutput{Body: destination}, nil
}

type DeleteDestinationInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type DeleteOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
		ID      uint `json:"id"`
	}
}

func (h *DestinationHandler) HandleDelete(ctx context.Context, input *DeleteDestinationInput) (*DeleteOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var destination models.Destination
	if err := h.db.First(&destination, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Destination not found")
		}
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	if err := h.db.Delete(&destination).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete destination: " + err.Error())
	}

	res := &DeleteOutput{}
	res.Body.Deleted = true
	res.Body.ID = input.ID
	return res, nil
}
