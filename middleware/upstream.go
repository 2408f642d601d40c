package middleware

import (
	"errors"

	"lmsweb/gateway"

	"github.com/gofiber/fiber/v2"
)

// UpstreamErrorResponse maps a gateway failure onto the response envelope:
// the server's message when it sent one, a generic fallback otherwise. No
// retry, no automatic logout; the caller's view stays interactive.
func UpstreamErrorResponse(c *fiber.Ctx, err error) error {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < fiber.StatusBadRequest || status > 599 {
			status = fiber.StatusBadGateway
		}
		return JsonResponse(c, status, false, apiErr.Message, nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, "Could not reach the learning service. Please try again.", nil)
}
