package authRoutes

import (
	authController "lmsweb/controllers/auth"
	"lmsweb/middleware"
	authValidator "lmsweb/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the authentication routes
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/logout", ctrl.Logout)
	authGroup.Get("/session", middleware.SessionMiddleware, ctrl.Session)
}
