package gateway

import (
	"bytes"
	"context"
	"fmt"

	"lmsweb/logger"
	"lmsweb/models"

	"go.uber.org/zap"
)

// Enroll enrolls the authenticated student into a module.
func (c *Client) Enroll(ctx context.Context, token, moduleID string) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]string{}).
		Post("/enrollments/" + moduleID)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// MyEnrollments fetches the authenticated user's enrollments. The API
// returns either {"enrollments":[...]} or a bare array.
func (c *Client) MyEnrollments(ctx context.Context, token string) ([]models.Enrollment, error) {
	resp, err := c.request(ctx, token).Get("/enrollments/my-courses")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && body[0] == '[' {
		var enrollments []models.Enrollment
		if err := decode(resp, &enrollments); err != nil {
			return nil, err
		}
		return enrollments, nil
	}

	var envelope struct {
		Enrollments []models.Enrollment `json:"enrollments"`
	}
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}
	if envelope.Enrollments == nil {
		return nil, fmt.Errorf("enrollment response missing enrollments")
	}
	return envelope.Enrollments, nil
}

// CheckEnrollment reports whether the user is enrolled in the module. There
// is no dedicated endpoint, so membership is tested against the full list.
// Any failure degrades to "not enrolled": a broken access check must never
// read as access granted.
func (c *Client) CheckEnrollment(ctx context.Context, token, moduleID string) bool {
	enrollments, err := c.MyEnrollments(ctx, token)
	if err != nil {
		logger.Log().Warn("enrollment check failed, treating as not enrolled",
			zap.String("module_id", moduleID),
			zap.Error(err))
		return false
	}
	for _, e := range enrollments {
		if e.ModuleID() == moduleID {
			return true
		}
	}
	return false
}
