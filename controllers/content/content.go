package contentController

import (
	"lmsweb/gateway"
	"lmsweb/logger"
	"lmsweb/middleware"
	contentValidator "lmsweb/validators/content"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller serves the instructor-facing content submission form.
type Controller struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Controller {
	return &Controller{gw: gw}
}

// AddContent forwards a validated content submission into a module. On
// success the response points back at the module detail view.
func (ctrl *Controller) AddContent(c *fiber.Ctx) error {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	moduleID := c.Locals("moduleID").(string)
	form, ok := c.Locals("validatedContent").(*contentValidator.ContentForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sub := gateway.ContentSubmission{
		Title:       form.Title,
		IsFree:      form.IsFree,
		Description: form.Description,
		Instruction: form.Instruction,
		MaxScore:    form.MaxScore,
		QuizUrl:     form.QuizUrl,
	}
	if form.File != nil {
		file, err := form.File.Open()
		if err != nil {
			logger.Log().Error("failed to open uploaded file", zap.Error(err))
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read the uploaded file!", nil)
		}
		defer file.Close()
		sub.File = file
		sub.FileName = form.File.Filename
	}

	if err := ctrl.gw.CreateContent(c.UserContext(), session.Token, moduleID, form.Kind, sub); err != nil {
		logger.Log().Warn("content creation failed",
			zap.String("module_id", moduleID),
			zap.String("type", form.Kind),
			zap.Error(err))
		return middleware.UpstreamErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content added successfully!", fiber.Map{
		"moduleId": moduleID,
		"redirect": "/modules/" + moduleID,
	})
}
