package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"todo-admin/models"
)

// Client-facing failure messages.
const (
	msgServerError   = "server error"
	msgNoAdmin       = "no administrator account"
	msgWrongPassword = "wrong password"
	msgLoginOK       = "login ok"
	msgEmptyContent  = "content must not be empty"
	msgBadContent    = "content must be text"
	msgCreateFailed  = "failed to add todo"
	msgDeleteFailed  = "failed to delete todo"
)

func failure(message string) models.Envelope {
	return models.Envelope{Success: false, Message: message}
}

// writeEnvelope is the single place a handler outcome becomes an HTTP
// response. Application failures are still 200; only the envelope says so.
func writeEnvelope(w http.ResponseWriter, logger *slog.Logger, env models.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
