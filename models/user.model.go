package models

import "encoding/json"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// User is the profile stored in the session and embedded in API responses.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UnmarshalJSON accepts the id under either "_id" or "id"; the upstream API
// is not consistent between auth payloads and embedded references.
func (u *User) UnmarshalJSON(b []byte) error {
	var wire struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	u.ID = wire.MongoID
	if u.ID == "" {
		u.ID = wire.ID
	}
	u.Name = wire.Name
	u.Email = wire.Email
	u.Role = wire.Role
	return nil
}

func (u User) IsInstructor() bool {
	return u.Role == RoleInstructor
}
