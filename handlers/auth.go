package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"todo-admin/models"
	"todo-admin/repository"
)

// AuthHandler handles the admin password check
type AuthHandler struct {
	userRepo *repository.UserRepository
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userRepo *repository.UserRepository, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login handles POST /api/login. It only reports whether the password
// matches the stored admin hash; nothing is issued on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	password, ok := passwordText(req.Password)

	user, err := h.userRepo.GetUserByUsername(r.Context(), repository.AdminUsername)
	if errors.Is(err, repository.ErrNotFound) {
		h.logger.Warn("login attempted without admin account")
		writeEnvelope(w, h.logger, failure(msgNoAdmin))
		return
	}
	if err != nil {
		h.logger.Error("failed to get admin user", "error", err)
		writeEnvelope(w, h.logger, failure(msgServerError))
		return
	}

	if !ok || !h.userRepo.ValidatePassword(user, password) {
		h.logger.Info("login rejected")
		writeEnvelope(w, h.logger, failure(msgWrongPassword))
		return
	}

	h.logger.Info("admin logged in")
	writeEnvelope(w, h.logger, models.Envelope{Success: true, Message: msgLoginOK})
}
