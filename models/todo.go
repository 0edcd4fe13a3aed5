package models

import "encoding/json"

// Todo represents a single note in the to-do list.
// CreateTime is SQLite's text form, e.g. "2024-05-01 08:00:00".
type Todo struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	CreateTime string `json:"create_time"`
}

// CreateTodoRequest is the payload for creating a new todo. Content is kept
// raw because clients may send any JSON value there.
type CreateTodoRequest struct {
	Content json.RawMessage `json:"content"`
}
