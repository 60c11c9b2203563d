package chatRoutes

import (
	chatController "cropconnect/controllers/chat"
	"cropconnect/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chat := app.Group("/chat")

	chat.Post("/message", middleware.JWTMiddleware, chatController.Message)
}
