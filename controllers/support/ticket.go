package supportController

import (
	"errors"

	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	supportValidators "cropconnect/validators/support"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ticketRank orders ticket statuses; transitions only move forward.
var ticketRank = map[string]int{
	models.TicketOpen:       0,
	models.TicketInProgress: 1,
	models.TicketResolved:   2,
}

// CreateTicket opens a support ticket for the acting user, capturing the
// submitter's name and role alongside.
func CreateTicket(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*supportValidators.CreateTicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:      user.ID,
		UserName:    user.Name,
		UserRole:    user.Role,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      models.TicketOpen,
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket)
}

// MyTickets lists the acting user's tickets, newest first.
func MyTickets(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", user.ID).
		Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

// AdminTicketList lists every ticket, optionally filtered by status.
func AdminTicketList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false")

	if status, ok := c.Locals("ticketStatusFilter").(string); ok {
		db = db.Where("status = ?", status)
	}

	var tickets []models.SupportTicket
	if err := db.Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

// AdminRespond stores the admin response and forces the ticket to resolved.
func AdminRespond(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResponse").(*supportValidators.RespondRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ticket!", nil)
	}

	if err := db.Model(&ticket).Updates(map[string]interface{}{
		"admin_response": reqData.AdminResponse,
		"status":         models.TicketResolved,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Response submitted successfully!", ticket)
}

// AdminUpdateStatus moves a ticket forward through open -> in-progress ->
// resolved. Backward moves are rejected.
func AdminUpdateStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*supportValidators.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("id = ? AND is_deleted = false", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ticket!", nil)
	}

	if ticketRank[reqData.Status] <= ticketRank[ticket.Status] {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket status can only move forward!", nil)
	}

	if err := db.Model(&ticket).Update("status", reqData.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket status updated successfully!", ticket)
}
