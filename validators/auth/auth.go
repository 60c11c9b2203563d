package authValidators

import (
	"strings"

	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Region   string `json:"region"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}

		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		// Admin accounts are provisioned through the admin directory, not
		// public signup.
		if reqData.Role == "" {
			reqData.Role = models.RoleFarmer
		}
		if reqData.Role != models.RoleFarmer && reqData.Role != models.RoleEmployee {
			errors["role"] = "Role must be farmer or employee!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
