package supportValidators

import (
	"strings"

	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/gofiber/fiber/v2"
)

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RespondRequest struct {
	AdminResponse string `json:"adminResponse"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTicketRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 100 {
			errors["title"] = "Title must not exceed 100 characters!"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

func Respond() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RespondRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.AdminResponse = strings.TrimSpace(reqData.AdminResponse)
		if len(reqData.AdminResponse) < 5 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"adminResponse": "Response must be at least 5 characters long!",
			})
		}

		c.Locals("validatedResponse", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		switch reqData.Status {
		case models.TicketInProgress, models.TicketResolved:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be in-progress or resolved!",
			})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if status := c.Query("status"); status != "" {
			switch status {
			case models.TicketOpen, models.TicketInProgress, models.TicketResolved:
			default:
				return middleware.ValidationErrorResponse(c, map[string]string{
					"status": "Status must be open, in-progress or resolved!",
				})
			}
			c.Locals("ticketStatusFilter", status)
		}
		return c.Next()
	}
}
