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

// QuestionHandler serves the poll-scoped administrative question
// endpoints.
type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// List handles GET /admin/polls/{poll_id}/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "poll_id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	ctx := r.Context()
	if err := store.PollExists(ctx, h.db, pollID); err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	questions, err := store.ListQuestions(ctx, h.db, pollID)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, questions)
}

// Create handles POST /admin/polls/{poll_id}/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "poll_id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found.")
		return
	}
	var in models.QuestionInput
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

	if err := store.PollExists(ctx, tx, pollID); err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	question, err := store.CreateQuestion(ctx, tx, pollID, in)
	if err != nil {
		writeStoreError(w, err, "Poll not found.")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "poll_id", pollID, "question_id", question.ID)
	middleware.JSONResponse(w, http.StatusCreated, question)
}

// Get handles GET /admin/polls/{poll_id}/questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	pollID, okPoll := pathID(r, "poll_id")
	id, okID := pathID(r, "id")
	if !okPoll || !okID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}
	question, err := store.GetQuestion(r.Context(), h.db, pollID, id)
	if err != nil {
		writeStoreError(w, err, "Question not found.")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, question)
}

// Update handles PUT and PATCH /admin/polls/{poll_id}/questions/{id}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	pollID, okPoll := pathID(r, "poll_id")
	id, okID := pathID(r, "id")
	if !okPoll || !okID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}
	var in models.QuestionInput
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

	question, err := store.UpdateQuestion(ctx, tx, pollID, id, in, r.Method == http.MethodPatch)
	if err != nil {
		writeStoreError(w, err, "Question not found.")
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	slog.Info("question updated", "poll_id", pollID, "question_id", id)
	middleware.JSONResponse(w, http.StatusOK, question)
}

// Delete handles DELETE /admin/polls/{poll_id}/questions/{id}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pollID, okPoll := pathID(r, "poll_id")
	id, okID := pathID(r, "id")
	if !okPoll || !okID {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}
	if err := store.DeleteQuestion(r.Context(), h.db, pollID, id); err != nil {
		writeStoreError(w, err, "Question not found.")
		return
	}
	slog.Info("question deleted", "poll_id", pollID, "question_id", id)
	w.WriteHeader(http.StatusNoContent)
}
