package authController

import (
	"lmsweb/gateway"
	"lmsweb/logger"
	"lmsweb/middleware"
	authValidator "lmsweb/validators/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller serves the authentication views.
type Controller struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Controller {
	return &Controller{gw: gw}
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := ctrl.gw.Login(c.UserContext(), reqData.Email, reqData.Password)
	if err != nil {
		logger.Log().Warn("login failed", zap.String("email", reqData.Email), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	cookie, err := middleware.IssueSession(session)
	if err != nil {
		logger.Log().Error("failed to issue session", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}
	middleware.SetSessionCookie(c, cookie)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user": session.User,
	})
}

func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := ctrl.gw.Signup(c.UserContext(), gateway.SignupProfile{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
	})
	if err != nil {
		logger.Log().Warn("signup failed", zap.String("email", reqData.Email), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	cookie, err := middleware.IssueSession(session)
	if err != nil {
		logger.Log().Error("failed to issue session", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}
	middleware.SetSessionCookie(c, cookie)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", fiber.Map{
		"user": session.User,
	})
}

// Logout clears the session cookie; token and profile leave together.
func (ctrl *Controller) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Session returns the profile of the current session.
func (ctrl *Controller) Session(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", fiber.Map{
		"user": session.User,
	})
}
