package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Destination struct {
	gorm.Model
	Name      string                      `json:"name"`
	Slug      string                      `json:"slug" gorm:"uniqueIndex"`
	Continent string                      `json:"continent" gorm:"index"`
	Country   string                      `json:"country" gorm:"index"`
	Tagline   string                      `json:"tagline"`
	Summary   string                      `json:"summary"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	HeroImage string                      `json:"hero_image"`
	Gallery   datatypes.JSONSlice[string] `json:"gallery"`
}
