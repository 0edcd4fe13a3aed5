package models

import "encoding/json"

// LoginRequest carries the candidate admin password. A password that is
// not a JSON string never matches.
type LoginRequest struct {
	Password json.RawMessage `json:"password"`
}

// User represents a stored credential
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
