package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Marketing/content collections. Static reference data; the only
// invariant is uniqueness of the natural key.

type ContentBlock struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

type Category struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type TripTemplate struct {
	gorm.Model
	Slug         string                             `json:"slug" gorm:"uniqueIndex"`
	Title        string                             `json:"title"`
	Summary      string                             `json:"summary"`
	DurationDays int                                `json:"duration_days"`
	Itinerary    datatypes.JSONSlice[ItineraryItem] `json:"itinerary"`
}

type ConciergeStarter struct {
	gorm.Model
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

type LoyaltyTier struct {
	gorm.Model
	Key       string                      `json:"key" gorm:"uniqueIndex"`
	Name      string                      `json:"name"`
	MinPoints int                         `json:"min_points"`
	Perks     datatypes.JSONSlice[string] `json:"perks"`
}

type Benefit struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Reward struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	TierKey     string `json:"tier_key"`
}
