package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type UserHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewUserHandler(db *gorm.DB, authHandler *auth.AuthHandler) *UserHandler {
	return &UserHandler{db: db, authHandler: authHandler}
}

type MeInput struct {
	auth.AuthInput
}

type UserOutput struct {
	Body models.User
}

func (h *UserHandler) HandleMe(ctx context.Context, input *MeInput) (*UserOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &UserOutput{Body: user}, nil
}

type ListUsersInput struct {
	auth.AuthInput
	PageQuery
	Role string `query:"role" doc:"Exact role filter"`
}

type ListUsersOutput struct {
	Body struct {
		Items []models.User `json:"items"`
		PageMeta
	}
}

func (h *UserHandler) HandleList(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	query := h.db.Model(&models.User{})
	if input.Role != "" {
		query = query.Where("role = ?", input.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count users: " + err.Error())
	}
	meta, offset := paginate(input.PageQuery, total)

	var items []models.User
	if err := query.Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}

	res := &ListUsersOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetUserInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *UserHandler) HandleGet(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var user models.User
	if err := h.db.First(&user, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &UserOutput{Body: user}, nil
}
