package chatController

import (
	"strings"

	"cropconnect/middleware"

	"github.com/gofiber/fiber/v2"
)

// CannedReply is the widget's only answer; there is no chat backend.
const CannedReply = "Thanks for your message. Our team will get back to you soon."

// Message echoes the canned support reply for any non-empty message.
func Message(c *fiber.Ctx) error {
	reqData := new(struct {
		Message string `json:"message"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Message) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"message": "Message is required!",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message received!", fiber.Map{
		"reply":  CannedReply,
		"sender": "bot",
	})
}
