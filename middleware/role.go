package middleware

import (
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
)

// RequireInstructor rejects non-instructor sessions. The API performs the
// authoritative check; this keeps student sessions off instructor routes.
func RequireInstructor(c *fiber.Ctx) error {
	session, ok := CurrentSession(c)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue!", nil)
	}
	if session.User.Role != models.RoleInstructor {
		return JsonResponse(c, fiber.StatusForbidden, false, "Only instructors can do this!", nil)
	}
	return c.Next()
}
