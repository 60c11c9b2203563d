package models

import "gorm.io/gorm"

// Announcement audiences
const (
	AudienceAll       = "all"
	AudienceFarmers   = "farmers"
	AudienceEmployees = "employees"
)

type Announcement struct {
	gorm.Model
	Title     string `json:"title"`
	Message   string `json:"message"`
	Audience  string `gorm:"default:'all'" json:"audience"` // all, farmers, employees
	IsDeleted bool   `gorm:"default:false" json:"is_deleted"`
}
