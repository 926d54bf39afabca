package main

import (
	_ "Backend-Mergington-API/docs"
	"Backend-Mergington-API/src/controllers"
	"Backend-Mergington-API/src/database"
	"Backend-Mergington-API/src/routes"
	"Backend-Mergington-API/src/seeder"
	"Backend-Mergington-API/src/services/activities"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

// @title        Mergington High School API
// @description  API for viewing and signing up for extracurricular activities
// @version      1.0
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	// The catalog is built once from the fixed seed and lives for the whole
	// process; everything the handlers touch hangs off it.
	catalog := database.NewCatalog(seeder.DefaultActivities())
	activityService := activities.NewService(catalog)
	activityController := controllers.NewActivityController(activityService)

	// UnescapePath decodes activity names in the URL (e.g. Chess%20Club)
	// before routing, so path params match catalog keys byte-for-byte.
	app := fiber.New(fiber.Config{
		AppName:      "Mergington High School API",
		UnescapePath: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	allowOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Static("/static", "./static")

	routes.InitRoutes(app, activityController)

	port := os.Getenv("APP_URI")
	if port == "" {
		port = "8000"
	}

	log.Println("Server is running on port " + port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
