package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TripStatusDraft     = "draft"
	TripStatusBooked    = "booked"
	TripStatusCompleted = "completed"
	TripStatusCanceled  = "canceled"
)

// Itinerary item types. Only tour and hotel items are bookable.
const (
	ItemTypeTour     = "tour"
	ItemTypeHotel    = "hotel"
	ItemTypeActivity = "activity"
	ItemTypeOther    = "other"
)

// ItineraryItem is one entry in a trip's ordered plan. ProductID is a
// soft reference into the tour or room collections; it is only resolved
// at checkout time.
type ItineraryItem struct {
	Type      string `json:"type"`
	ProductID string `json:"product_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Title     string `json:"title,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Trip struct {
	gorm.Model
	UserID         uint                               `json:"user_id" gorm:"index"`
	User           User                               `json:"-"`
	Title          string                             `json:"title"`
	StartDate      *time.Time                         `json:"start_date"`
	EndDate        *time.Time                         `json:"end_date"`
	Status         string                             `json:"status" gorm:"default:draft;index"`
	OriginCity     string                             `json:"origin_city"`
	Budget         float64                            `json:"budget"`
	TravelerCount  int                                `json:"traveler_count"`
	TravelStyle    string                             `json:"travel_style"`
	DestinationIDs datatypes.JSONSlice[uint]          `json:"destination_ids"`
	Itinerary      datatypes.JSONSlice[ItineraryItem] `json:"itinerary"`
}
