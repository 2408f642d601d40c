// Package gateway is the client's only path to the remote LMS API: one
// function per remote operation, a single attempt each, no retries. Every
// endpoint is decoded through an explicit envelope struct and missing keys
// surface as errors instead of being guessed around.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx upstream response, carrying the server's message
// field when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the remote LMS API.
type Client struct {
	http *resty.Client
}

// New builds a gateway client for the given API base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// request starts an upstream request bound to the caller's context. The
// bearer token is attached when the caller has one.
func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkStatus converts a non-2xx response into an APIError.
func checkStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Message
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{Status: resp.StatusCode(), Message: msg}
}

// decode unmarshals a response body, reporting shape problems loudly.
func decode(resp *resty.Response, v interface{}) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("unexpected response shape from %s: %w", resp.Request.URL, err)
	}
	return nil
}
