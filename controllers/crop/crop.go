package cropController

import (
	"errors"
	"log"

	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	cropValidators "cropconnect/validators/crop"
	"cropconnect/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCropUpdate persists a farmer's submission with status pending.
func CreateCropUpdate(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCropUpdate").(*cropValidators.CreateCropRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	update, err := workflow.NewCropUpdate(user.ID, workflow.SubmissionInput{
		CropType:            reqData.CropType,
		Stage:               reqData.Stage,
		Quantity:            reqData.Quantity,
		PlantedDate:         reqData.PlantedDate,
		ExpectedHarvestDate: reqData.ExpectedHarvestDate,
		Notes:               reqData.Notes,
	})
	if err != nil {
		var vErr *workflow.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit crop update!", nil)
	}

	if err := database.Database.Db.Create(&update).Error; err != nil {
		log.Printf("Error saving crop update: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit crop update!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Crop update submitted successfully!", update)
}

// ListCropUpdates returns submissions newest first. Farmers see their own;
// employees and admins see everything.
func ListCropUpdates(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates, err := fetchScoped(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch crop updates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crop updates fetched successfully!", updates)
}

// ActivityFeed returns the latest 10 submissions across the acting user's
// scope.
func ActivityFeed(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := scopedQuery(user)

	var updates []models.CropUpdate
	if err := db.Order("created_at DESC").Limit(10).Find(&updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched successfully!", updates)
}

// ReviewCropUpdate approves or rejects a pending submission. Only
// employees and admins reach this handler; the route is role-guarded.
func ReviewCropUpdate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*cropValidators.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updateID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid crop update id!", nil)
	}

	db := database.Database.Db

	var update models.CropUpdate
	if err := db.Where("id = ? AND is_deleted = false", updateID).First(&update).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Crop update not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch crop update!", nil)
	}

	if err := workflow.ApplyStatus(&update, reqData.Status, reqData.Feedback); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending crop updates can be reviewed!", nil)
		}
		var vErr *workflow.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review crop update!", nil)
	}

	if err := db.Model(&update).Select("status", "feedback").Updates(map[string]interface{}{
		"status":   update.Status,
		"feedback": update.Feedback,
	}).Error; err != nil {
		log.Printf("Error updating crop update status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review crop update!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crop update reviewed successfully!", update)
}

// DeleteCropUpdate soft deletes the farmer's own submission. Rejected
// submissions are deleted and recreated rather than edited; approved ones
// stay on record.
func DeleteCropUpdate(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updateID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid crop update id!", nil)
	}

	db := database.Database.Db

	var update models.CropUpdate
	if err := db.Where("id = ? AND farmer_id = ? AND is_deleted = false", updateID, user.ID).First(&update).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Crop update not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch crop update!", nil)
	}

	if update.Status == models.StatusApproved {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Approved crop updates cannot be deleted!", nil)
	}

	if err := db.Model(&update).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete crop update!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crop update deleted successfully!", nil)
}

// scopedQuery narrows the crop update query to the acting user's scope.
func scopedQuery(user models.User) *gorm.DB {
	db := database.Database.Db.Model(&models.CropUpdate{}).Where("is_deleted = false")
	if user.Role == models.RoleFarmer {
		db = db.Where("farmer_id = ?", user.ID)
	}
	return db
}

func fetchScoped(user models.User) ([]models.CropUpdate, error) {
	var updates []models.CropUpdate
	err := scopedQuery(user).Order("created_at DESC").Find(&updates).Error
	return updates, err
}
