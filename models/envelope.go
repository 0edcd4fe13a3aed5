package models

// Envelope is the JSON body returned by every API endpoint.
// Fields other than Success are only emitted when set; list responses
// always set Data, even on failure, so clients see "data": [].
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
	Data    any    `json:"data,omitempty"`
}
