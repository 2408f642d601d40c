package contentValidator

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lmsweb/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFormApp wires the validator in front of a probe handler so tests can
// tell whether a submission got past validation.
func newFormApp(submitted *bool, captured **ContentForm) *fiber.App {
	app := fiber.New()
	app.Post("/content", ContentFormValidator(), func(c *fiber.Ctx) error {
		*submitted = true
		if form, ok := c.Locals("validatedContent").(*ContentForm); ok {
			*captured = form
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

type formField struct{ key, value string }

func multipartBody(t *testing.T, fields []formField, fileField, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range fields {
		require.NoError(t, writer.WriteField(f.key, f.value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func submit(t *testing.T, app *fiber.App, kind string, fields []formField, fileField, fileName string) (*http.Response, string) {
	t.Helper()
	body, contentType := multipartBody(t, fields, fileField, fileName)
	req := httptest.NewRequest(http.MethodPost, "/content?type="+kind, body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &envelope)
	return resp, envelope.Message
}

func TestQuizRejectsNonGoogleFormURL(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, message := submit(t, app, "quiz", []formField{
		{"title", "Checkpoint"},
		{"quizUrl", "https://example.com/quiz"},
	}, "", "")

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Please enter a valid Google Form URL!", message)
	assert.False(t, submitted, "an invalid form must never reach the gateway")
}

func TestQuizAcceptsGoogleFormURLs(t *testing.T) {
	for _, url := range []string{
		"https://forms.gle/abc123",
		"https://docs.google.com/forms/d/e/xyz/viewform",
		"http://docs.google.com/forms/d/abc",
	} {
		submitted := false
		var form *ContentForm
		app := newFormApp(&submitted, &form)

		resp, _ := submit(t, app, "quiz", []formField{
			{"title", "Checkpoint"},
			{"quizUrl", url},
		}, "", "")

		require.Equal(t, fiber.StatusOK, resp.StatusCode, url)
		require.True(t, submitted)
		assert.Equal(t, url, form.QuizUrl)
	}
}

func TestVideoRequiresFile(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, message := submit(t, app, "video", []formField{
		{"title", "Intro"},
		{"description", "first lesson"},
	}, "", "")

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Video file is required!", message)
	assert.False(t, submitted)
}

func TestAssignmentRequiresFile(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, message := submit(t, app, "assignment", []formField{
		{"title", "Homework"},
		{"instruction", "solve it"},
	}, "", "")

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Assignment file is required!", message)
	assert.False(t, submitted)
}

func TestTitleRequiredBeforeKindChecks(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, message := submit(t, app, "quiz", []formField{
		{"quizUrl", "https://forms.gle/abc"},
	}, "", "")

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Title is required!", message)
	assert.False(t, submitted)
}

func TestUnknownKindRejected(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, _ := submit(t, app, "podcast", []formField{{"title", "X"}}, "", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, submitted)
}

// Switching kinds preserves the title but drops fields of the other kinds:
// only the selected kind's fields survive into the validated form.
func TestKindSwitchDropsOtherKindFields(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	// The client still carries video-tab leftovers, but submits as quiz.
	resp, _ := submit(t, app, "quiz", []formField{
		{"title", "Kept Title"},
		{"quizUrl", "https://forms.gle/abc"},
		{"description", "stale video description"},
		{"instruction", "stale assignment instruction"},
	}, "video", "stale.mp4")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, submitted)
	assert.Equal(t, "Kept Title", form.Title)
	assert.Equal(t, "https://forms.gle/abc", form.QuizUrl)
	assert.Empty(t, form.Description)
	assert.Empty(t, form.Instruction)
	assert.Nil(t, form.File)
}

func TestAssignmentDefaultsAndIsFree(t *testing.T) {
	submitted := false
	var form *ContentForm
	app := newFormApp(&submitted, &form)

	resp, _ := submit(t, app, "assignment", []formField{
		{"title", "Homework"},
		{"instruction", "solve it"},
		{"isFree", "true"},
	}, "assignment", "hw.pdf")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, submitted)
	assert.Equal(t, 100, form.MaxScore, "max score defaults to 100")
	assert.True(t, form.IsFree)
	require.NotNil(t, form.File)
	assert.Equal(t, "hw.pdf", form.File.Filename)
}
