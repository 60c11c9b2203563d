package supportRoutes

import (
	supportController "cropconnect/controllers/support"
	"cropconnect/middleware"
	"cropconnect/models"
	supportValidators "cropconnect/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support")

	anyRole := middleware.RequireRole(models.RoleFarmer, models.RoleEmployee, models.RoleAdmin)

	support.Post("/create", supportValidators.CreateTicket(), middleware.JWTMiddleware, anyRole, supportController.CreateTicket)
	support.Get("/list", middleware.JWTMiddleware, anyRole, supportController.MyTickets)
	support.Get("/admin-list", supportValidators.AdminList(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), supportController.AdminTicketList)
	support.Post("/:id/respond", supportValidators.Respond(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), supportController.AdminRespond)
	support.Patch("/:id/status", supportValidators.UpdateStatus(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), supportController.AdminUpdateStatus)
}
