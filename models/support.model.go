package models

import "gorm.io/gorm"

// Support ticket statuses. Tickets move open -> in-progress -> resolved.
const (
	TicketOpen       = "open"
	TicketInProgress = "in-progress"
	TicketResolved   = "resolved"
)

type SupportTicket struct {
	gorm.Model
	UserID        uint   `json:"user_id"`
	UserName      string `json:"user_name"`
	UserRole      string `json:"user_role"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `gorm:"default:'open'" json:"status"`
	AdminResponse string `json:"admin_response"`
	IsDeleted     bool   `json:"is_deleted" gorm:"default:false"`
}
