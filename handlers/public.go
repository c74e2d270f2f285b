// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/store"
)

// PublicHandler serves the unauthenticated poll listing and detail
// endpoints. Only polls inside their active window are visible; a
// poll outside it responds exactly like a missing one, so existence
// never leaks outside the window.
type PublicHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPublicHandler(db *sql.DB, cfg cliparse.Config) *PublicHandler {
	return &PublicHandler{db: db, cfg: cfg}
}

// List handles GET /polls
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := store.ListActivePolls(r.Context(), h.db, time.Now().UTC())
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// Get handles GET /polls/{id}
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	poll, err := store.GetActivePoll(r.Context(), h.db, id, time.Now().UTC())
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}
