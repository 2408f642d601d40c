package contentValidator

import (
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"

	"lmsweb/middleware"
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
)

// googleFormPattern is the only quiz destination the product accepts.
var googleFormPattern = regexp.MustCompile(`^https?://(docs\.google\.com/forms|forms\.gle)`)

// ContentForm is a validated add-content submission. Only the fields of the
// selected kind are populated; values typed under another kind never reach
// the payload.
type ContentForm struct {
	Kind   string
	Title  string
	IsFree bool

	Description string // video
	Instruction string // assignment
	MaxScore    int    // assignment
	QuizUrl     string // quiz

	File *multipart.FileHeader // video or assignment upload
}

// ContentFormValidator checks the submission in order and rejects it with
// the first specific failure; nothing is forwarded on a partial form.
func ContentFormValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := c.Query("type")
		if kind != models.ContentVideo && kind != models.ContentAssignment && kind != models.ContentQuiz {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content type must be video, assignment or quiz!", nil)
		}

		form := &ContentForm{
			Kind:  kind,
			Title: strings.TrimSpace(c.FormValue("title")),
		}
		if free, err := strconv.ParseBool(c.FormValue("isFree", "false")); err == nil {
			form.IsFree = free
		}

		if form.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Title is required!", nil)
		}

		switch kind {
		case models.ContentVideo:
			file, err := c.FormFile("video")
			if err != nil || file == nil {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Video file is required!", nil)
			}
			form.File = file
			form.Description = strings.TrimSpace(c.FormValue("description"))

		case models.ContentAssignment:
			file, err := c.FormFile("assignment")
			if err != nil || file == nil {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Assignment file is required!", nil)
			}
			form.File = file
			form.Instruction = strings.TrimSpace(c.FormValue("instruction"))

			form.MaxScore = 100
			if raw := c.FormValue("maxScore"); raw != "" {
				maxScore, err := strconv.Atoi(raw)
				if err != nil || maxScore < 1 {
					return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Max score must be a positive number!", nil)
				}
				form.MaxScore = maxScore
			}

		case models.ContentQuiz:
			form.QuizUrl = strings.TrimSpace(c.FormValue("quizUrl"))
			if !googleFormPattern.MatchString(form.QuizUrl) {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please enter a valid Google Form URL!", nil)
			}
		}

		c.Locals("validatedContent", form)
		return c.Next()
	}
}
