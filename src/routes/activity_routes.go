package routes

import (
	"Backend-Mergington-API/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes wires the activity endpoints. Activity names arrive as a
// URL-encoded path segment; the app is configured with UnescapePath, so the
// :name param is already decoded when the controller reads it.
func activityRoutes(app *fiber.App, activityController *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", activityController.GetAllActivities)
	activityRoutes.Post("/:name/signup", activityController.SignupForActivity)
	activityRoutes.Delete("/:name/unregister", activityController.UnregisterFromActivity)
}
