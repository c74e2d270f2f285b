// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Querier is the read surface satisfied by both *sql.DB and *sql.Tx.
// Write operations take *sql.Tx explicitly: the store never opens a
// connection or commits, the caller owns the transaction boundary.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrNotFound is returned when a referenced poll, question, or parent
// row does not exist (or, for public reads, is outside its active
// window - callers must not be able to tell those apart).
var ErrNotFound = errors.New("not found")

// ValidationError rejects a write before any rows are touched. Errs
// holds one message per failed rule; batch validations collect every
// failure instead of stopping at the first.
type ValidationError struct {
	Errs []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errs, "; ")
}

func invalid(msgs ...string) *ValidationError {
	return &ValidationError{Errs: msgs}
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Errs: []string{fmt.Sprintf(format, args...)}}
}
