package userValidators

import (
	"strings"

	"cropconnect/directory"
	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Region     string `json:"region"`
	AssignedTo *uint  `json:"assignedTo"`
}

// UpdateUserRequest carries a partial edit; nil pointers leave the field
// unchanged.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Region     *string `json:"region"`
	AssignedTo *uint   `json:"assignedTo"`
}

type ListQueryRequest struct {
	Role   string
	Region string
	Search string
	SortBy string
	Order  string
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}

		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if !models.ValidRole(reqData.Role) {
			errors["role"] = "Role must be farmer, employee or admin!"
		}

		// Assignment only makes sense for farmers.
		if reqData.AssignedTo != nil && reqData.Role != models.RoleFarmer {
			errors["assignedTo"] = "Only farmers can be assigned to an employee!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if len(*reqData.Name) < 2 {
				errors["name"] = "Name must be at least 2 characters long!"
			}
		}
		if reqData.Role != nil && !models.ValidRole(*reqData.Role) {
			errors["role"] = "Role must be farmer, employee or admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListQueryRequest{
			Role:   c.Query("role"),
			Region: c.Query("region"),
			Search: c.Query("search"),
			SortBy: c.Query("sortBy", directory.SortByCreatedAt),
			Order:  c.Query("order", "desc"),
		}

		errors := make(map[string]string)

		if reqData.Role != "" && !models.ValidRole(reqData.Role) {
			errors["role"] = "Role must be farmer, employee or admin!"
		}
		switch reqData.SortBy {
		case directory.SortByName, directory.SortByRole, directory.SortByCreatedAt:
		default:
			errors["sortBy"] = "Sort field must be name, role or createdAt!"
		}
		if reqData.Order != "asc" && reqData.Order != "desc" {
			errors["order"] = "Order must be asc or desc!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListQuery", reqData)
		return c.Next()
	}
}
