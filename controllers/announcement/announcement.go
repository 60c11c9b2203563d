package announcementController

import (
	"errors"
	"log"

	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	"cropconnect/utils"
	announcementValidators "cropconnect/validators/announcement"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateAnnouncement publishes an announcement and notifies the audience
// by email, best effort.
func CreateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*announcementValidators.CreateAnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	announcement := models.Announcement{
		Title:    reqData.Title,
		Message:  reqData.Message,
		Audience: reqData.Audience,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	go notifyAudience(announcement)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

// ListAnnouncements returns announcements visible to the acting user's
// role, newest first. Admins see everything.
func ListAnnouncements(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Announcement{}).Where("is_deleted = false")

	switch user.Role {
	case models.RoleFarmer:
		db = db.Where("audience IN ?", []string{models.AudienceAll, models.AudienceFarmers})
	case models.RoleEmployee:
		db = db.Where("audience IN ?", []string{models.AudienceAll, models.AudienceEmployees})
	}

	var announcements []models.Announcement
	if err := db.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
}

// DeleteAnnouncement soft deletes an announcement. Announcements are
// immutable once published; delete is the only mutation.
func DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
	}

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.Where("id = ? AND is_deleted = false", announcementID).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcement!", nil)
	}

	if err := db.Model(&announcement).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully!", nil)
}

func notifyAudience(announcement models.Announcement) {
	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = false")

	switch announcement.Audience {
	case models.AudienceFarmers:
		db = db.Where("role = ?", models.RoleFarmer)
	case models.AudienceEmployees:
		db = db.Where("role = ?", models.RoleEmployee)
	}

	var emails []string
	if err := db.Pluck("email", &emails).Error; err != nil {
		log.Printf("Error fetching announcement audience: %v", err)
		return
	}

	if err := utils.SendEmail(emails, announcement.Title, utils.AnnouncementEmail(announcement.Title, announcement.Message)); err != nil {
		log.Printf("Error emailing announcement %d: %v", announcement.ID, err)
	}
}
