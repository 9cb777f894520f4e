package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

// ContentHandler serves the marketing/content collections. These are
// static display data; everything here is a plain read except the
// key-addressed content block upsert used by the admin console.
type ContentHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewContentHandler(db *gorm.DB, authHandler *auth.AuthHandler) *ContentHandler {
	return &ContentHandler{db: db, authHandler: authHandler}
}

type ListContentBlocksOutput struct {
	Body []models.ContentBlock
}

func (h *ContentHandler) HandleListContentBlocks(ctx context.Context, input *struct{}) (*ListContentBlocksOutput, error) {
	var items []models.ContentBlock
	if err := h.db.Order("key").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list content blocks: " + err.Error())
	}
	return &ListContentBlocksOutput{Body: items}, nil
}

type UpsertContentBlockInput struct {
	auth.AuthInput
	Body struct {
		Key   string `json:"key" required:"true"`
		Title string `json:"title"`
		Body  string `json:"body"`
		Image string `json:"image"`
	}
}

type ContentBlockOutput struct {
	Body models.ContentBlock
}

func (h *ContentHandler) HandleUpsertContentBlock(ctx context.Context, input *UpsertContentBlockInput) (*ContentBlockOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}
	if input.Body.Key == "" {
		return nil, huma.Error400BadRequest("Key is required")
	}

	var block models.ContentBlock
	if err := h.db.FirstOrInit(&block, models.ContentBlock{Key: input.Body.Key}).Error; err != nil {
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	block.Title = input.Body.Title
	block.Body = input.Body.Body
	block.Image = input.Body.Image
	if err := h.db.Save(&block).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save content block: " + err.Error())
	}
	return &ContentBlockOutput{Body: block}, nil
}

type ListCategoriesOutput struct {
	Body []models.Category
}

func (h *ContentHandler) HandleListCategories(ctx context.Context, input *struct{}) (*ListCategoriesOutput, error) {
	var items []models.Category
	if err := h.db.Order("slug").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list categories: " + err.Error())
	}
	return &ListCategoriesOutput{Body: items}, nil
}

type ListTripTemplatesOutput struct {
	Body []models.TripTemplate
}

func (h *ContentHandler) HandleListTripTemplates(ctx context.Context, input *struct{}) (*ListTripTemplatesOutput, error) {
	var items []models.TripTemplate
	if err := h.db.Order("slug").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list trip templates: " + err.Error())
	}
	return &ListTripTemplatesOutput{Body: items}, nil
}

type GetTripTemplateInput struct {
	Slug string `path:"slug"`
}

type TripTemplateOutput struct {
	Body models.TripTemplate
}

func (h *ContentHandler) HandleGetTripTemplate(ctx context.Context, input *GetTripTemplateInput) (*TripTemplateOutput, error) {
	var template models.TripTemplate
	if err := h.db.Where("slug = ?", input.Slug).First(&template).Error; err != nil {
		return nil, huma.Error404NotFound("Trip template not found")
	}
	return &TripTemplateOutput{Body: template}, nil
}

type ListConciergeStartersOutput struct {
	Body []models.ConciergeStarter
}

func (h *ContentHandler) HandleListConciergeStarters(ctx context.Context, input *struct{}) (*ListConciergeStartersOutput, error) {
	var items []models.ConciergeStarter
	if err := h.db.Order("id").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list concierge starters: " + err.Error())
	}
	return &ListConciergeStartersOutput{Body: items}, nil
}

type ListLoyaltyTiersOutput struct {
	Body []models.LoyaltyTier
}

func (h *ContentHandler) HandleListLoyaltyTiers(ctx context.Context, input *struct{}) (*ListLoyaltyTiersOutput, error) {
	var items []models.LoyaltyTier
	if err := h.db.Order("min_points").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list loyalty tiers: " + err.Error())
	}
	return &ListLoyaltyTiersOutput{Body: items}, nil
}

type ListBenefitsOutput struct {
	Body []models.Benefit
}

func (h *ContentHandler) HandleListBenefits(ctx context.Context, input *struct{}) (*ListBenefitsOutput, error) {
	var items []models.Benefit
	if err := h.db.Order("id").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list benefits: " + err.Error())
	}
	return &ListBenefitsOutput{Body: items}, nil
}

type ListRewardsOutput struct {
	Body []models.Reward
}

func (h *ContentHandler) HandleListRewards(ctx context.Context, input *struct{}) (*ListRewardsOutput, error) {
	var items []models.Reward
	if err := h.db.Order("cost").Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list rewards: " + err.Error())
	}
	return &ListRewardsOutput{Body: items}, nil
}
