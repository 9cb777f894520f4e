package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

type RoomHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewRoomHandler(db *gorm.DB, authHandler *auth.AuthHandler) *RoomHandler {
	return &RoomHandler{db: db, authHandler: authHandler}
}

type ListRoomsInput struct {
	PageQuery
	HotelID     uint    `path:"hotelId"`
	MinCapacity int     `query:"minCapacity" doc:"Minimum sleeping capacity"`
	MaxPrice    float64 `query:"maxPrice" doc:"Maximum nightly price"`
}

type ListRoomsOutput struct {
	Body struct {
		Items []models.Room `json:"items"`
		PageMeta
	}
}

func (h *RoomHandler) HandleListByHotel(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	var hotel models.Hotel
	if err := h.db.First(&hotel, input.HotelID).Error; err != nil {
		return nil, huma.Error404NotFound("Hotel not found")
	}

	query := h.db.Model(&models.Room{}).Where("hotel_id = ?", input.HotelID)
	if input.MinCapacity > 0 {
		query = query.Where("capacity >= ?", input.MinCapacity)
	}
	if input.MaxPrice > 0 {
		query = query.Where("price_per_night <= ?", input.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count rooms: " + err.Error())
	}
	meta, offset := paginate(input.PageQuery, total)

	var items []models.Room
	if err := query.Order("id").Offset(offset).Limit(meta.Limit).Find(&items).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list rooms: " + err.Error())
	}

	res := &ListRoomsOutput{}
	res.Body.Items = items
	res.Body.PageMeta = meta
	return res, nil
}

type GetRoomInput struct {
	ID uint `path:"id"`
}

type RoomOutput struct {
	Body models.Room
}

func (h *RoomHandler) HandleGet(ctx context.Context, input *GetRoomInput) (*RoomOutput, error) {
	var room models.Room
	if err := h.db.Preload("Hotel").First(&room, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Room not found")
	}
	return &RoomOutput{Body: room}, nil
}

type CreateRoomInput struct {
	auth.AuthInput
	Body struct {
		HotelID       uint    `json:"hotel_id" required:"true"`
		Name          string  `json:"name" required:"true"`
		Capacity      int     `json:"capacity"`
		BedType       string  `json:"bed_type"`
		PricePerNight float64 `json:"price_per_night"`
		Inventory     int     `json:"inventory"`
	}
}

func (h *RoomHandler) HandleCreate(ctx context.Context, input *CreateRoomInput) (*RoomOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}
	if input.Body.HotelID == 0 || input.Body.Name == "" {
		return nil, huma.Error400BadRequest("Hotel id and name are required")
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, input.Body.HotelID).Error; err != nil {
		return nil, huma.Error400BadRequest("Hotel does not exist")
	}

	room := models.Room{
		HotelID:       input.Body.HotelID,
		Name:          input.Body.Name,
		Capacity:      input.Body.Capacity,
		BedType:       input.Body.BedType,
		PricePerNight: input.Body.PricePerNight,
		Inventory:     input.Body.Inventory,
	}
	if err := h.db.Create(&room).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create room: " + err.Error())
	}
	return &RoomOutput{Body: room}, nil
}

type UpdateRoomInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Name          *string  `json:"name,omitempty"`
		Capacity      *int     `json:"capacity,omitempty"`
		BedType       *string  `json:"bed_type,omitempty"`
		PricePerNight *float64 `json:"price_per_night,omitempty"`
		Inventory     *int     `json:"inventory,omitempty"`
	}
}

func (h *RoomHandler) HandleUpdate(ctx context.Context, input *UpdateRoomInput) (*RoomOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var room models.Room
	if err := h.db.First(&room, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Room not found")
	}

	if input.Body.Name != nil {
		room.Name = *input.Body.Name
	}
	if input.Body.Capacity != nil {
		room.Capacity = *input.Body.Capacity
	}
	if input.Body.BedType != nil {
		room.BedType = *input.Body.BedType
	}
	if input.Body.PricePerNight != nil {
		room.PricePerNight = *input.Body.PricePerNight
	}
	if input.Body.Inventory != nil {
		room.Inventory = *input.Body.Inventory
	}

	if err := h.db.Save(&room).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update room: " + err.Error())
	}
	return &RoomOutput{Body: room}, nil
}

type DeleteRoomInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *RoomHandler) HandleDelete(ctx context.Context, input *DeleteRoomInput) (*DeleteOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.RequireAdmin(userID); err != nil {
		return nil, err
	}

	var room models.Room
	if err := h.db.First(&room, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Room not found")
		}
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	if err := h.db.Delete(&room).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete room: " + err.Error())
	}

	res := &DeleteOutput{}
	res.Body.Deleted = true
	res.Body.ID = input.ID
	return res, nil
}
