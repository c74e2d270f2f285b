// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/models"
	"github.com/akarpov/polls-api/store"
)

// PollHandler serves the administrative poll CRUD endpoints.
type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// List handles GET /admin/polls
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := store.ListPolls(r.Context(), h.db)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// Create handles POST /admin/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PollInput
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

	poll, err := store.CreatePoll(ctx, tx, in)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "title", poll.Title)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// Get handles GET /admin/polls/{id}
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	poll, err := store.GetPoll(r.Context(), h.db, id)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Update handles PUT and PATCH /admin/polls/{id}. PATCH applies a
// partial update; both replace the question list when one is present.
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	var in models.PollInput
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

	poll, err := store.UpdatePoll(ctx, tx, id, in, r.Method == http.MethodPatch)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}

	slog.Info("poll updated", "poll_id", poll.ID)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Delete handles DELETE /admin/polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	if err := store.DeletePoll(r.Context(), h.db, id); err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	slog.Info("poll deleted", "poll_id", id)
	w.WriteHeader(http.StatusNoContent)
}
