/*
Package router defines HTTP routes for the polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Session:

	POST /api/v1/auth/login - Exchange admin credentials for a JWT

Poll management (admin, requires Authorization: Bearer token):

	GET    /api/v1/admin/polls      - List all polls
	POST   /api/v1/admin/polls      - Create poll with nested questions
	GET    /api/v1/admin/polls/{id} - Poll detail
	PUT    /api/v1/admin/polls/{id} - Full update
	PATCH  /api/v1/admin/polls/{id} - Partial update
	DELETE /api/v1/admin/polls/{id} - Delete poll

Question management (admin, poll-scoped):

	GET    /api/v1/admin/polls/{poll_id}/questions
	POST   /api/v1/admin/polls/{poll_id}/questions
	GET    /api/v1/admin/polls/{poll_id}/questions/{id}
	PUT    /api/v1/admin/polls/{poll_id}/questions/{id}
	PATCH  /api/v1/admin/polls/{poll_id}/questions/{id}
	DELETE /api/v1/admin/polls/{poll_id}/questions/{id}

Public (active-window polls only):

	GET  /api/v1/polls                      - List active polls
	GET  /api/v1/polls/{id}                 - Active poll detail
	POST /api/v1/polls/{poll_id}/submissions - Submit answers
	GET  /api/v1/users/{user_id}/submissions - A user's submissions

Discovery:

	GET /api/v1/openapi.json - OpenAPI 3 description

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, cfg)
	submissionHandler := handlers.NewSubmissionHandler(db, cfg)

All handlers receive the database connection and configuration; admin
routes are additionally wrapped with middleware.RequireAdmin.
*/
package router
