// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/models"
	"github.com/akarpov/polls-api/store"
)

// SubmissionHandler serves submission creation and the per-user
// submission listing.
type SubmissionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{db: db, cfg: cfg}
}

// Create handles POST /polls/{poll_id}/submissions. The poll must be
// inside its active window; a closed or missing poll is the same 404.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "poll_id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	var in models.SubmissionInput
	if err := middleware.ParseJSONBody(r, &in); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ctx := r.Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	poll, err := store.GetActivePoll(ctx, tx, pollID, time.Now().UTC())
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	sub, err := store.CreateSubmission(ctx, tx, poll, in)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	slog.Info("submission created", "poll_id", pollID, "user_id", sub.UserID, "submission_id", sub.ID)
	middleware.JSONResponse(w, http.StatusCreated, sub)
}

// ListForUser handles GET /users/{user_id}/submissions. No time
// filter: users see their history after polls close.
func (h *SubmissionHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found.")
		return
	}
	subs, err := store.ListUserSubmissions(r.Context(), h.db, userID)
	if err != nil {
		writeStoreError(w, err, "User not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, subs)
}
