package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleFarmer   = "farmer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Name       string `gorm:"default:''" json:"name"`
	Email      string `gorm:"unique;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Role       string `gorm:"default:'farmer'" json:"role"` // farmer, employee, admin
	Region     string `gorm:"default:''" json:"region"`
	AssignedTo *uint  `json:"assignedTo"` // employee id, farmer-only
	IsDeleted  bool   `gorm:"default:false" json:"is_deleted"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}
