package authValidator

import (
	"strings"

	"lmsweb/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student instructor"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// collectErrors maps validator failures onto per-field messages.
func collectErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": "Invalid request body!"}
	}
	errors := make(map[string]string)
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = title(field) + " is required!"
		case "email":
			errors[field] = "Invalid email address!"
		case "min":
			errors[field] = title(field) + " must be at least " + fe.Param() + " characters long!"
		case "oneof":
			errors[field] = title(field) + " must be one of: " + fe.Param() + "!"
		default:
			errors[field] = "Invalid " + field + "!"
		}
	}
	return errors
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
