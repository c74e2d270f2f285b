/*
Package handlers contains HTTP request handlers for the polls API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: administrative poll CRUD with nested questions
  - QuestionHandler: poll-scoped administrative question CRUD
  - PublicHandler: active-window poll listing and detail
  - SubmissionHandler: submission creation and per-user history
  - AuthHandler: admin login, exchanging credentials for a JWT

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Transactions

Every top-level write opens one transaction at the handler boundary
and hands it to the store layer:

	tx, _ := h.db.BeginTx(ctx, nil)
	defer tx.Rollback()
	poll, err := store.CreatePoll(ctx, tx, in)
	// ...
	tx.Commit()

Either every row of a nested write commits, or none does - a failed
child answer rolls back the parent submission with it.

# Error Mapping

Store errors are translated uniformly: ValidationError → 400 with the
collected details list, ErrNotFound → 404, anything else → logged
500. Public endpoints return the same 404 for "missing" and "exists
but outside its active window".
*/
package handlers
