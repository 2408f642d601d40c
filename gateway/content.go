package gateway

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"lmsweb/models"
)

// ContentSubmission is a validated content form ready to forward. Only the
// fields of the submitted kind are sent; the rest stay out of the payload.
type ContentSubmission struct {
	Title  string
	IsFree bool

	Description string // video, optional
	Instruction string // assignment
	MaxScore    int    // assignment
	QuizUrl     string // quiz

	FileName string
	File     io.Reader // video or assignment upload
}

// CreateContent posts a new content item into a module. The API expects the
// kind as a query parameter and a kind-specific file field name.
func (c *Client) CreateContent(ctx context.Context, token, moduleID, kind string, sub ContentSubmission) error {
	req := c.request(ctx, token).
		SetQueryParam("type", kind).
		SetMultipartFormData(map[string]string{
			"title":  sub.Title,
			"isFree": strconv.FormatBool(sub.IsFree),
		})

	switch kind {
	case models.ContentVideo:
		if sub.Description != "" {
			req.SetMultipartFormData(map[string]string{"description": sub.Description})
		}
		req.SetFileReader("video", sub.FileName, sub.File)
	case models.ContentAssignment:
		req.SetMultipartFormData(map[string]string{
			"instruction": sub.Instruction,
			"maxScore":    strconv.Itoa(sub.MaxScore),
		})
		req.SetFileReader("assignment", sub.FileName, sub.File)
	case models.ContentQuiz:
		req.SetMultipartFormData(map[string]string{
			"quizUrl":     sub.QuizUrl,
			"description": "External Google Form Quiz",
		})
	default:
		return fmt.Errorf("unknown content type %q", kind)
	}

	resp, err := req.Post("/modules/" + moduleID + "/content")
	if err != nil {
		return err
	}
	return checkStatus(resp)
}
