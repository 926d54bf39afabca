package routes

import (
	"Backend-Mergington-API/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes registers every module's routes on the app.
func InitRoutes(app *fiber.App, activityController *controllers.ActivityController) {
	activityRoutes(app, activityController)

	// The site root hands off to the static front-end.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})
}
