package reportController

import (
	"errors"
	"time"

	"cropconnect/config"
	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	"cropconnect/reports"
	reportValidators "cropconnect/validators/report"
	"cropconnect/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SearchSubmissions returns display-ready rows for submissions inside the
// inclusive date range, scoped to the farmer's own records.
func SearchSubmissions(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSearch").(*reportValidators.SearchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := reports.ValidateRange(reqData.Start, reqData.End); err != nil {
		var vErr *workflow.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date range!", nil)
	}

	db := database.Database.Db.Model(&models.CropUpdate{}).
		Where("is_deleted = false").
		Where("created_at >= ? AND created_at <= ?", *reqData.Start, *reqData.End)
	if user.Role == models.RoleFarmer {
		db = db.Where("farmer_id = ?", user.ID)
	}

	var updates []models.CropUpdate
	if err := db.Order("created_at DESC").Find(&updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", reports.BuildRows(updates))
}

// GenerateReport runs a simulated report generation and responds once it
// resolves. Concurrent generations are independent.
func GenerateReport(c *fiber.Ctx) error {
	generator := reports.Generator{Delay: reportDelay()}
	result := <-generator.Generate(reports.KindReport)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report generated successfully!", result)
}

// GenerateCertificate runs a simulated certificate generation for an
// approved submission.
func GenerateCertificate(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCertificate").(*reportValidators.CertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.SubmissionID == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please select a submission first!", nil)
	}

	db := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.SubmissionID)
	if user.Role == models.RoleFarmer {
		db = db.Where("farmer_id = ?", user.ID)
	}

	var update models.CropUpdate
	if err := db.First(&update).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submission!", nil)
	}

	if err := reports.CertificateEligible(&update); err != nil {
		if errors.Is(err, reports.ErrNotApproved) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only approved submissions are eligible for a certificate!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please select a submission first!", nil)
	}

	generator := reports.Generator{Delay: reportDelay()}
	result := <-generator.Generate(reports.KindCertificate)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully!", result)
}

func reportDelay() time.Duration {
	return time.Duration(config.AppConfig.ReportDelaySeconds) * time.Second
}
