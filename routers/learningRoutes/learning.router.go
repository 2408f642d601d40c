package learningRoutes

import (
	learningController "lmsweb/controllers/learning"
	"lmsweb/middleware"
	moduleValidator "lmsweb/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes sets up the enrollment routes
func SetupLearningRoutes(app *fiber.App, ctrl *learningController.Controller) {
	learningGroup := app.Group("/learning", middleware.SessionMiddleware)

	learningGroup.Get("/", ctrl.MyLearning)
	learningGroup.Post("/:id/enroll", moduleValidator.ModuleID(), ctrl.Enroll)
	learningGroup.Get("/:id/status", moduleValidator.ModuleID(), ctrl.Status)
}
