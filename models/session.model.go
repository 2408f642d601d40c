package models

// Session is the authenticated state of the client: the opaque API token and
// the profile it belongs to. Both are persisted together in the session
// cookie and cleared together on logout.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
