/*
Package store is the validation and composition layer: it turns one
incoming nested payload into a consistent set of persisted rows, or
rejects the whole operation.

# Transaction Contract

Write operations take a *sql.Tx supplied by the caller and never
commit or roll back themselves. The handler owns the boundary:

	tx, err := db.BeginTx(ctx, nil)
	defer tx.Rollback()
	poll, err := store.CreatePoll(ctx, tx, input)
	if err != nil {
		// ValidationError → 400, ErrNotFound → 404, else → 500
	}
	tx.Commit()

Read operations take a Querier, satisfied by *sql.DB and *sql.Tx.

# Poll and Question Writes

Nested writes replace, they never diff: supplying a questions list on
a poll update deletes every existing question (options cascade) and
inserts the new list; supplying options on a question update does the
same one level down. start_date is immutable once set, and end_date
must fall strictly after it.

# Submission Writes

CreateSubmission validates the answer set as a batch - duplicate
question references, unanswered poll questions, and answers for
foreign questions are all collected before anything is rejected. A
prior submission by the same user for the same poll is deleted, then
each answer is dispatched through a lookup table keyed by the
question's type: text answers require non-empty text, choice answers
exactly one selected option, multiply_choice answers at least one.
Every selected option must belong to the answer's own question.
*/
package store
