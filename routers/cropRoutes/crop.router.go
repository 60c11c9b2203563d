package cropRoutes

import (
	cropController "cropconnect/controllers/crop"
	"cropconnect/middleware"
	"cropconnect/models"
	cropValidators "cropconnect/validators/crop"

	"github.com/gofiber/fiber/v2"
)

func SetupCropRoutes(app *fiber.App) {
	crops := app.Group("/crops")

	crops.Post("/create", cropValidators.CreateCropUpdate(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer), cropController.CreateCropUpdate)
	crops.Get("/list", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), cropController.ListCropUpdates)
	crops.Get("/activity", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), cropController.ActivityFeed)
	crops.Patch("/:id/status", cropValidators.ReviewCropUpdate(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEmployee, models.RoleAdmin), cropController.ReviewCropUpdate)
	crops.Delete("/:id", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer), cropController.DeleteCropUpdate)

	dashboard := app.Group("/dashboard")

	dashboard.Get("/metrics", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), cropController.DashboardMetrics)
	dashboard.Get("/chart", cropValidators.ChartQuery(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), cropController.SubmissionChart)
	dashboard.Get("/calendar", cropValidators.CalendarQuery(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), cropController.CropCalendar)
}
