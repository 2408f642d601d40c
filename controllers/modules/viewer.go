package moduleController

import (
	"lmsweb/access"
	"lmsweb/logger"
	"lmsweb/middleware"
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ViewContent renders a single content item. The item is located inside the
// already-fetched module, not fetched separately. A missing resource URL
// renders an explicit error field, never a silent blank.
func (ctrl *Controller) ViewContent(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)
	contentID := c.Locals("contentID").(string)

	module, err := ctrl.gw.GetModule(c.UserContext(), session.Token, moduleID)
	if err != nil {
		logger.Log().Warn("module fetch failed", zap.String("module_id", moduleID), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	item, found := module.FindContent(contentID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	enrolled := false
	if !session.User.IsInstructor() {
		enrolled = ctrl.gw.CheckEnrollment(c.UserContext(), session.Token, moduleID)
	}
	if !access.CanAccess(session.User, module, enrolled, item) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This content is locked. Enroll to view it!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contentView(item))
}

func contentView(item models.Content) fiber.Map {
	view := fiber.Map{
		"id":     item.ID,
		"title":  item.Title,
		"type":   item.Type,
		"isFree": item.IsFree,
	}

	switch item.Type {
	case models.ContentVideo:
		view["description"] = item.Description
		if item.VideoUrl != "" {
			view["videoUrl"] = item.VideoUrl
		} else {
			view["error"] = "Video unavailable."
		}

	case models.ContentAssignment:
		instruction := item.Instruction
		if instruction == "" {
			instruction = "No specific instructions provided."
		}
		maxScore := item.MaxScore
		if maxScore == 0 {
			maxScore = 100
		}
		view["instruction"] = instruction
		view["maxScore"] = maxScore
		if item.InstructionPdfUrl != "" {
			view["downloadUrl"] = item.InstructionPdfUrl
		} else {
			view["error"] = "Assignment file missing."
		}

	case models.ContentQuiz:
		if link := item.QuizLink(); link != "" {
			view["quizUrl"] = link
		} else {
			view["error"] = "Quiz link missing."
		}
	}

	return view
}
