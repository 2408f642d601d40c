package main

import (
	"log"
	"time"

	"lmsweb/config"
	authController "lmsweb/controllers/auth"
	contentController "lmsweb/controllers/content"
	learningController "lmsweb/controllers/learning"
	moduleController "lmsweb/controllers/modules"
	"lmsweb/gateway"
	"lmsweb/logger"
	"lmsweb/middleware"
	"lmsweb/routers/authRoutes"
	"lmsweb/routers/learningRoutes"
	"lmsweb/routers/moduleRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func newApp(gw *gateway.Client) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.RequestID)

	// Serve the static shell from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, authController.New(gw))
	moduleRoutes.SetupModuleRoutes(app, moduleController.New(gw), contentController.New(gw))
	learningRoutes.SetupLearningRoutes(app, learningController.New(gw))

	return app
}

func main() {
	config.LoadConfig()
	logger.Init()
	defer logger.Sync()

	gw := gateway.New(config.AppConfig.ApiBaseUrl, time.Duration(config.AppConfig.ApiTimeout)*time.Second)
	app := newApp(gw)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
