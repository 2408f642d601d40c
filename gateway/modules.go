package gateway

import (
	"context"
	"fmt"

	"lmsweb/listing"
	"lmsweb/models"
)

// ModuleFields is the payload for module creation.
type ModuleFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
}

type modulesEnvelope struct {
	Data *struct {
		Modules    []models.Module    `json:"modules"`
		Pagination *models.Pagination `json:"pagination"`
	} `json:"data"`
}

type moduleEnvelope struct {
	Data *struct {
		Module *models.Module `json:"module"`
	} `json:"data"`
}

// ListModules fetches one catalog page for the given query.
func (c *Client) ListModules(ctx context.Context, token string, q listing.Query, limit int) ([]models.Module, models.Pagination, error) {
	resp, err := c.request(ctx, token).
		SetQueryParams(q.Params(limit)).
		Get("/modules")
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if err := checkStatus(resp); err != nil {
		return nil, models.Pagination{}, err
	}
	var envelope modulesEnvelope
	if err := decode(resp, &envelope); err != nil {
		return nil, models.Pagination{}, err
	}
	if envelope.Data == nil || envelope.Data.Modules == nil || envelope.Data.Pagination == nil {
		return nil, models.Pagination{}, fmt.Errorf("module list response missing data.modules or data.pagination")
	}
	return envelope.Data.Modules, *envelope.Data.Pagination, nil
}

// MyModules fetches the modules owned by the authenticated instructor.
func (c *Client) MyModules(ctx context.Context, token string) ([]models.Module, error) {
	resp, err := c.request(ctx, token).Get("/modules/my-modules")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var envelope modulesEnvelope
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil || envelope.Data.Modules == nil {
		return nil, fmt.Errorf("my-modules response missing data.modules")
	}
	return envelope.Data.Modules, nil
}

// GetModule fetches a single module with its content sequence.
func (c *Client) GetModule(ctx context.Context, token, id string) (models.Module, error) {
	resp, err := c.request(ctx, token).Get("/modules/" + id)
	if err != nil {
		return models.Module{}, err
	}
	if err := checkStatus(resp); err != nil {
		return models.Module{}, err
	}
	var envelope moduleEnvelope
	if err := decode(resp, &envelope); err != nil {
		return models.Module{}, err
	}
	if envelope.Data == nil || envelope.Data.Module == nil {
		return models.Module{}, fmt.Errorf("module response missing data.module")
	}
	return *envelope.Data.Module, nil
}

// CreateModule creates a module container. The response body is not needed
// by any view, so only the outcome is reported.
func (c *Client) CreateModule(ctx context.Context, token string, fields ModuleFields) error {
	resp, err := c.request(ctx, token).
		SetBody(fields).
		Post("/modules")
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// DeleteModule removes a module.
func (c *Client) DeleteModule(ctx context.Context, token, id string) error {
	resp, err := c.request(ctx, token).Delete("/modules/" + id)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}
