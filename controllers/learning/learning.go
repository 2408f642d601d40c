package learningController

import (
	"lmsweb/gateway"
	"lmsweb/logger"
	"lmsweb/middleware"
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller serves the student-facing enrollment views.
type Controller struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Controller {
	return &Controller{gw: gw}
}

// LearningItem is one entry of the my-learning list.
type LearningItem struct {
	EnrollmentID string `json:"enrollmentId"`
	ModuleID     string `json:"moduleId"`
	Title        string `json:"title"`
}

// MyLearning lists the user's enrollments. A failed fetch degrades to an
// empty list so the view stays interactive.
func (ctrl *Controller) MyLearning(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := ctrl.gw.MyEnrollments(c.UserContext(), session.Token)
	if err != nil {
		logger.Log().Warn("enrollment list fetch failed, showing empty list", zap.Error(err))
		enrollments = []models.Enrollment{}
	}

	items := make([]LearningItem, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, LearningItem{
			EnrollmentID: e.ID,
			ModuleID:     e.ModuleID(),
			Title:        e.ModuleTitle(),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": items,
		"count":       len(items),
	})
}

// Enroll enrolls the user into a module. The success payload carries the
// new state so the caller flips to "enrolled" without a refetch.
func (ctrl *Controller) Enroll(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	if err := ctrl.gw.Enroll(c.UserContext(), session.Token, moduleID); err != nil {
		logger.Log().Warn("enrollment failed", zap.String("module_id", moduleID), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully!", fiber.Map{
		"moduleId": moduleID,
		"enrolled": true,
	})
}

// Status reports whether the user is enrolled in a module. A failed check
// reads as not enrolled, never as an error.
func (ctrl *Controller) Status(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	enrolled := ctrl.gw.CheckEnrollment(c.UserContext(), session.Token, moduleID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"moduleId": moduleID,
		"enrolled": enrolled,
	})
}
