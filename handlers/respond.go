// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akarpov/polls-api/middleware"
	"github.com/akarpov/polls-api/store"
)

// writeStoreError maps a store failure onto the wire: validation
// errors become a 400 with the collected detail list, missing rows a
// 404, everything else a logged 500. Integrity violations from racing
// writers land in the 500 branch on purpose.
func writeStoreError(w http.ResponseWriter, err error, notFound string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ValidationErrorResponse(w, verr.Errs)
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	default:
		slog.Error("database error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// pathID parses a numeric path segment. Malformed IDs behave like
// missing rows, the caller responds 404.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
