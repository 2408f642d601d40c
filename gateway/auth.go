package gateway

import (
	"context"
	"fmt"

	"lmsweb/models"

	"github.com/go-resty/resty/v2"
)

// SignupProfile is the payload for account creation.
type SignupProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// authPayload covers both token key names the API is known to use.
type authPayload struct {
	SessionCookie string       `json:"sessionCookie"`
	Token         string       `json:"token"`
	User          *models.User `json:"user"`
}

func decodeSession(resp *resty.Response) (models.Session, error) {
	var payload authPayload
	if err := decode(resp, &payload); err != nil {
		return models.Session{}, err
	}
	token := payload.SessionCookie
	if token == "" {
		token = payload.Token
	}
	if token == "" || payload.User == nil {
		return models.Session{}, fmt.Errorf("auth response missing token or user")
	}
	return models.Session{Token: token, User: *payload.User}, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := c.request(ctx, "").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		return models.Session{}, err
	}
	if err := checkStatus(resp); err != nil {
		return models.Session{}, err
	}
	return decodeSession(resp)
}

// Signup registers a new account and returns its session.
func (c *Client) Signup(ctx context.Context, profile SignupProfile) (models.Session, error) {
	resp, err := c.request(ctx, "").
		SetBody(profile).
		Post("/auth/signup")
	if err != nil {
		return models.Session{}, err
	}
	if err := checkStatus(resp); err != nil {
		return models.Session{}, err
	}
	return decodeSession(resp)
}
