package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name          string                      `json:"name"`
	Slug          string                      `json:"slug" gorm:"uniqueIndex"`
	DestinationID uint                        `json:"destination_id" gorm:"index"`
	Destination   Destination                 `json:"destination"`
	Rating        float64                     `json:"rating"`
	Summary       string                      `json:"summary"`
	Amenities     datatypes.JSONSlice[string] `json:"amenities"`
	Address       string                      `json:"address"`
	Lat           float64                     `json:"lat"`
	Lng           float64                     `json:"lng"`
	HeroImage     string                      `json:"hero_image"`
	Gallery       datatypes.JSONSlice[string] `json:"gallery"`
}
