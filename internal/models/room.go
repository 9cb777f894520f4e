package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model
	HotelID       uint    `json:"hotel_id" gorm:"index"`
	Hotel         Hotel   `json:"hotel"`
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	BedType       string  `json:"bed_type"`
	PricePerNight float64 `json:"price_per_night"`
	// Display-only; nothing decrements this and nothing prevents overbooking.
	Inventory int `json:"inventory"`
}
