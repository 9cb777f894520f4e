package models

import (
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
)

const (
	ProductTypeTour  = "tour"
	ProductTypeHotel = "hotel"
	ProductTypeOther = "other"
)

// Booking captures the price at creation time; later catalog price
// changes never touch existing rows.
type Booking struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"index"`
	User        User    `json:"-"`
	TripID      uint    `json:"trip_id" gorm:"index"`
	Trip        Trip    `json:"-"`
	ProductType string  `json:"product_type"`
	ProductID   string  `json:"product_id"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status" gorm:"default:pending;index"`
	PaymentID   string  `json:"payment_id"`
}
