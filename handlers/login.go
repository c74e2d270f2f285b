// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/polls-api/auth"
	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/models"
)

// AuthHandler exchanges admin credentials for a session token.
type AuthHandler struct {
	cfg     cliparse.Config
	manager *auth.Manager
}

func NewAuthHandler(cfg cliparse.Config, manager *auth.Manager) *AuthHandler {
	return &AuthHandler{cfg: cfg, manager: manager}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if !auth.CheckCredentials(req.Username, req.Password, h.cfg.AdminUser, h.cfg.AdminPassword) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.manager.Issue(req.Username, true)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("admin logged in", "username", req.Username)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}
