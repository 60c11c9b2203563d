package announcementValidators

import (
	"strings"

	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/gofiber/fiber/v2"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAnnouncementRequest)

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

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if reqData.Audience == "" {
			reqData.Audience = models.AudienceAll
		}
		switch reqData.Audience {
		case models.AudienceAll, models.AudienceFarmers, models.AudienceEmployees:
		default:
			errors["audience"] = "Audience must be all, farmers or employees!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
