package moduleController

import (
	"lmsweb/access"
	"lmsweb/logger"
	"lmsweb/middleware"
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContentListItem is one row of the module detail's content list. Locked
// items carry no resource URLs; the viewer route re-checks access before
// handing any out.
type ContentListItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	IsFree   bool   `json:"isFree"`
	Unlocked bool   `json:"unlocked"`
	Action   string `json:"action"`
}

// Detail renders a module's header and content list with per-item access.
func (ctrl *Controller) Detail(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)

	module, err := ctrl.gw.GetModule(c.UserContext(), session.Token, moduleID)
	if err != nil {
		logger.Log().Warn("module fetch failed", zap.String("module_id", moduleID), zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	isOwner := access.IsOwner(session.User, module)
	enrolled := false
	if !session.User.IsInstructor() {
		enrolled = ctrl.gw.CheckEnrollment(c.UserContext(), session.Token, moduleID)
	}

	items := make([]ContentListItem, 0, len(module.Content))
	for _, item := range module.Content {
		items = append(items, contentListItem(session.User, module, enrolled, item))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module": fiber.Map{
			"id":          module.ID,
			"title":       module.Title,
			"description": module.Description,
			"price":       module.Price,
			"category":    module.Category,
			"difficulty":  module.Difficulty,
			"instructor":  module.Instructor,
		},
		"isOwner":   isOwner,
		"enrolled":  enrolled,
		"canEnroll": !isOwner && !enrolled,
		"content":   items,
	})
}

func contentListItem(user models.User, module models.Module, enrolled bool, item models.Content) ContentListItem {
	unlocked := access.CanAccess(user, module, enrolled, item)
	action := "Locked"
	if unlocked {
		action = "View Content"
		if item.Type == models.ContentVideo {
			action = "Play Video"
		}
	}
	return ContentListItem{
		ID:       item.ID,
		Title:    item.Title,
		Type:     item.Type,
		IsFree:   item.IsFree,
		Unlocked: unlocked,
		Action:   action,
	}
}
