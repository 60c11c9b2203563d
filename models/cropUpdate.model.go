package models

import (
	"time"

	"gorm.io/gorm"
)

// Crop update statuses. Pending is the initial state; approved and
// rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type CropUpdate struct {
	gorm.Model
	FarmerID            uint       `gorm:"index" json:"farmer_id"`
	CropType            string     `json:"type"`
	Stage               string     `json:"stage"`
	Quantity            float64    `json:"quantity"` // acres
	PlantedDate         *time.Time `json:"planted_date"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date"`
	Notes               string     `json:"notes"`
	Status              string     `gorm:"default:'pending'" json:"status"`
	Feedback            string     `json:"feedback"` // set only when rejected
	IsDeleted           bool       `gorm:"default:false" json:"is_deleted"`
}
