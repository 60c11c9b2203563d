package announcementRoutes

import (
	announcementController "cropconnect/controllers/announcement"
	"cropconnect/middleware"
	"cropconnect/models"
	announcementValidators "cropconnect/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	announcements := app.Group("/announcements")

	announcements.Post("/create", announcementValidators.CreateAnnouncement(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), announcementController.CreateAnnouncement)
	announcements.Get("/list", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin), announcementController.ListAnnouncements)
	announcements.Delete("/:id", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), announcementController.DeleteAnnouncement)
}
