package models

import (
	"bytes"
	"encoding/json"
)

// InstructorRef is the module's owner: either a bare user id or an embedded
// profile, depending on whether the API populated the reference.
type InstructorRef struct {
	ID   string
	Name string
}

func (r *InstructorRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var wire struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	r.ID = wire.MongoID
	if r.ID == "" {
		r.ID = wire.ID
	}
	r.Name = wire.Name
	return nil
}

func (r InstructorRef) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

// Module is a purchasable course container owning an ordered list of content.
type Module struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Difficulty  string        `json:"difficulty"`
	Instructor  InstructorRef `json:"instructor"`
	Content     []Content     `json:"content"`
}

// UnmarshalJSON accepts the content list under either "content" or
// "courses"; both key names exist in upstream module documents.
func (m *Module) UnmarshalJSON(b []byte) error {
	type alias Module
	var wire struct {
		alias
		Courses []Content `json:"courses"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*m = Module(wire.alias)
	if len(m.Content) == 0 {
		m.Content = wire.Courses
	}
	return nil
}

// FindContent locates an item by id in the module's content sequence.
func (m Module) FindContent(id string) (Content, bool) {
	for _, item := range m.Content {
		if item.ID == id {
			return item, true
		}
	}
	return Content{}, false
}
