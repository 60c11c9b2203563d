package main

import (
	"log"

	"cropconnect/config"
	"cropconnect/database"
	announcementRoutes "cropconnect/routers/announcementRoutes"
	authRoutes "cropconnect/routers/authRoutes"
	chatRoutes "cropconnect/routers/chatRoutes"
	cropRoutes "cropconnect/routers/cropRoutes"
	reportRoutes "cropconnect/routers/reportRoutes"
	supportRoutes "cropconnect/routers/supportRoutes"
	userRoutes "cropconnect/routers/userRoutes"
	"cropconnect/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	cropRoutes.SetupCropRoutes(app)
	userRoutes.SetupUserRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	chatRoutes.SetupChatRoutes(app)

	utils.StartHarvestScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
