/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion
(duration_ms), tagging both lines with a generated request ID that is
also echoed back in the X-Request-ID header.

# Admin Guard

Admin endpoints are wrapped with RequireAdmin, which parses the
Authorization bearer token and rejects missing tokens (401), invalid
or expired tokens (401), and non-admin claims (403):

	mux.HandleFunc("POST /api/v1/admin/polls",
		middleware.WithLogging(middleware.RequireAdmin(m, h.Create)))

# CORS Middleware

Enable cross-origin requests for browser clients:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, details)

Parse JSON request bodies:

	var in models.PollInput
	if err := middleware.ParseJSONBody(r, &in); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
