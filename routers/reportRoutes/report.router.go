package reportRoutes

import (
	reportController "cropconnect/controllers/report"
	"cropconnect/middleware"
	"cropconnect/models"
	reportValidators "cropconnect/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportsGroup := app.Group("/reports")

	anyRole := middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin)

	reportsGroup.Get("/search", reportValidators.Search(), middleware.JWTMiddleware, anyRole, reportController.SearchSubmissions)
	reportsGroup.Post("/generate", middleware.JWTMiddleware, anyRole, reportController.GenerateReport)
	reportsGroup.Post("/certificate", reportValidators.Certificate(), middleware.JWTMiddleware, anyRole, reportController.GenerateCertificate)
}
