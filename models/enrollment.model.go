package models

import (
	"bytes"
	"encoding/json"
)

// ModuleRef is the module side of an enrollment: a bare module id or an
// embedded module summary, depending on whether the API populated it.
type ModuleRef struct {
	ID    string
	Title string
	Price float64
}

func (r *ModuleRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var wire struct {
		ID    string  `json:"_id"`
		Title string  `json:"title"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	r.ID = wire.ID
	r.Title = wire.Title
	r.Price = wire.Price
	return nil
}

// Enrollment grants a student access to a module's non-free content. Some
// upstream responses return bare module documents instead of enrollment
// rows, so the entry's own id and title double as the module's.
type Enrollment struct {
	ID     string    `json:"_id"`
	Title  string    `json:"title"`
	Module ModuleRef `json:"module"`
}

// ModuleID returns the enrolled module's id regardless of response shape.
func (e Enrollment) ModuleID() string {
	if e.Module.ID != "" {
		return e.Module.ID
	}
	return e.ID
}

// ModuleTitle returns the enrolled module's title regardless of shape.
func (e Enrollment) ModuleTitle() string {
	if e.Module.Title != "" {
		return e.Module.Title
	}
	return e.Title
}
