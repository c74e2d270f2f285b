// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/akarpov/polls-api/auth"
	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/handlers"
	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/openapi"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	manager := auth.NewManager(cfg.JWTSecret)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, manager)
	pollHandler := handlers.NewPollHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, cfg)
	submissionHandler := handlers.NewSubmissionHandler(db, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(manager, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("POST /api/v1/auth/login", middleware.WithLogging(authHandler.Login))

	// Poll management (admin, full CRUD, no time restriction)
	mux.HandleFunc("GET /api/v1/admin/polls", admin(pollHandler.List))
	mux.HandleFunc("POST /api/v1/admin/polls", admin(pollHandler.Create))
	mux.HandleFunc("GET /api/v1/admin/polls/{id}", admin(pollHandler.Get))
	mux.HandleFunc("PUT /api/v1/admin/polls/{id}", admin(pollHandler.Update))
	mux.HandleFunc("PATCH /api/v1/admin/polls/{id}", admin(pollHandler.Update))
	mux.HandleFunc("DELETE /api/v1/admin/polls/{id}", admin(pollHandler.Delete))

	// Question management (admin, scoped to a poll)
	mux.HandleFunc("GET /api/v1/admin/polls/{poll_id}/questions", admin(questionHandler.List))
	mux.HandleFunc("POST /api/v1/admin/polls/{poll_id}/questions", admin(questionHandler.Create))
	mux.HandleFunc("GET /api/v1/admin/polls/{poll_id}/questions/{id}", admin(questionHandler.Get))
	mux.HandleFunc("PUT /api/v1/admin/polls/{poll_id}/questions/{id}", admin(questionHandler.Update))
	mux.HandleFunc("PATCH /api/v1/admin/polls/{poll_id}/questions/{id}", admin(questionHandler.Update))
	mux.HandleFunc("DELETE /api/v1/admin/polls/{poll_id}/questions/{id}", admin(questionHandler.Delete))

	// Public poll access (active window only)
	mux.HandleFunc("GET /api/v1/polls", middleware.WithLogging(publicHandler.List))
	mux.HandleFunc("GET /api/v1/polls/{id}", middleware.WithLogging(publicHandler.Get))

	// Submissions
	mux.HandleFunc("POST /api/v1/polls/{poll_id}/submissions", middleware.WithLogging(submissionHandler.Create))
	mux.HandleFunc("GET /api/v1/users/{user_id}/submissions", middleware.WithLogging(submissionHandler.ListForUser))

	// Machine-readable API description
	mux.HandleFunc("GET /api/v1/openapi.json", middleware.WithLogging(openapi.Handler))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("polls API v1"))
	})

	return mux
}
