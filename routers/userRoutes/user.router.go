package userRoutes

import (
	userController "cropconnect/controllers/user"
	"cropconnect/middleware"
	"cropconnect/models"
	userValidators "cropconnect/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users")

	users.Get("/list", userValidators.ListQuery(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), userController.AdminListUsers)
	users.Post("/create", userValidators.CreateUser(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), userController.AdminCreateUser)
	users.Put("/:id", userValidators.UpdateUser(), middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), userController.AdminUpdateUser)
	users.Delete("/:id", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin), userController.AdminDeleteUser)
	users.Get("/assigned/:employeeId", middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleEmployee, models.RoleAdmin), userController.AssignedFarmers)
}
