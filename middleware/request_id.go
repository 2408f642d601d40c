package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDLocal = "requestId"

// RequestID tags each request with a unique id, reusing the caller's
// X-Request-Id when present.
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	c.Locals(requestIDLocal, id)
	c.Set("X-Request-Id", id)
	return c.Next()
}

// GetRequestID retrieves the request id set by RequestID.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		return id
	}
	return ""
}
