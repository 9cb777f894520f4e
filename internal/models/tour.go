package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TourDay is one entry of a tour's embedded day-by-day itinerary.
type TourDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Tour struct {
	gorm.Model
	Title        string                       `json:"title"`
	Slug         string                       `json:"slug" gorm:"uniqueIndex"`
	Summary      string                       `json:"summary"`
	Destinations []Destination                `json:"destinations" gorm:"many2many:tour_destinations"`
	DurationDays int                          `json:"duration_days"`
	PriceFrom    float64                      `json:"price_from"`
	Itinerary    datatypes.JSONSlice[TourDay] `json:"itinerary"`
	Highlights   datatypes.JSONSlice[string]  `json:"highlights"`
	HeroImage    string                       `json:"hero_image"`
	Gallery      datatypes.JSONSlice[string]  `json:"gallery"`
}
