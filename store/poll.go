// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akarpov/polls-api/models"
)

// CreatePoll validates and persists a poll together with its nested
// questions and options as one unit.
func CreatePoll(ctx context.Context, tx *sql.Tx, in models.PollInput) (*models.Poll, error) {
	var errs []string
	if in.Title == nil || *in.Title == "" {
		errs = append(errs, "title is required")
	}
	if in.StartDate == nil {
		errs = append(errs, "start_date is required")
	}
	if in.EndDate == nil {
		errs = append(errs, "end_date is required")
	}
	if in.Description == nil {
		errs = append(errs, "description is required")
	}
	if in.StartDate != nil && in.EndDate != nil && !in.EndDate.After(*in.StartDate) {
		errs = append(errs, "end_date must occur after start_date")
	}
	for _, q := range in.Questions {
		errs = append(errs, validateQuestion(q, false)...)
	}
	if len(errs) > 0 {
		return nil, invalid(errs...)
	}

	now := time.Now().UTC()
	poll := &models.Poll{
		Title:       *in.Title,
		StartDate:   *in.StartDate,
		EndDate:     *in.EndDate,
		Description: *in.Description,
		LastChange:  now,
	}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO poll (title, start_date, end_date, description, last_change)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, poll.Title, poll.StartDate, poll.EndDate, poll.Description, poll.LastChange).Scan(&poll.ID)
	if err != nil {
		return nil, err
	}

	poll.Questions, err = insertQuestions(ctx, tx, poll.ID, in.Questions)
	if err != nil {
		return nil, err
	}
	return poll, nil
}

// UpdatePoll applies a full (PUT) or partial (PATCH) update. A
// supplied questions list replaces every existing question; absent
// fields keep their stored values on partial updates. start_date is
// immutable once set.
func UpdatePoll(ctx context.Context, tx *sql.Tx, id int64, in models.PollInput, partial bool) (*models.Poll, error) {
	existing, err := GetPoll(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	var errs []string
	if !partial {
		if in.Title == nil || *in.Title == "" {
			errs = append(errs, "title is required")
		}
		if in.StartDate == nil {
			errs = append(errs, "start_date is required")
		}
		if in.EndDate == nil {
			errs = append(errs, "end_date is required")
		}
		if in.Description == nil {
			errs = append(errs, "description is required")
		}
	}
	if in.StartDate != nil && !in.StartDate.Equal(existing.StartDate) {
		errs = append(errs, "start_date is immutable once set")
	}
	if in.StartDate != nil {
		end := existing.EndDate
		if in.EndDate != nil {
			end = *in.EndDate
		}
		if !end.After(*in.StartDate) {
			errs = append(errs, "end_date must occur after start_date")
		}
	}
	for _, q := range in.Questions {
		errs = append(errs, validateQuestion(q, false)...)
	}
	if len(errs) > 0 {
		return nil, invalid(errs...)
	}

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.EndDate != nil {
		existing.EndDate = *in.EndDate
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}

	// Replace-on-update: no diffing, the old question tree goes away
	// and the supplied one is inserted in order.
	if in.HasQuestions() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM question WHERE poll_id = $1`, id); err != nil {
			return nil, err
		}
		existing.Questions, err = insertQuestions(ctx, tx, id, in.Questions)
		if err != nil {
			return nil, err
		}
	}

	existing.LastChange = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		UPDATE poll SET title = $1, end_date = $2, description = $3, last_change = $4
		WHERE id = $5
	`, existing.Title, existing.EndDate, existing.Description, existing.LastChange, id)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePoll removes a poll; questions, options, and submissions go
// with it via cascades.
func DeletePoll(ctx context.Context, q Querier, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PollExists reports ErrNotFound unless the poll row is present. Used
// by question endpoints that only need the parent to exist.
func PollExists(ctx context.Context, q Querier, id int64) error {
	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// GetPoll loads one poll with its full question tree.
func GetPoll(ctx context.Context, q Querier, id int64) (*models.Poll, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, start_date, end_date, description, last_change
		FROM poll WHERE id = $1
	`, id)
	return scanPoll(ctx, q, row)
}

// GetActivePoll loads one poll only if now falls inside its
// submission window. A poll outside the window is reported exactly
// like a missing one.
func GetActivePoll(ctx context.Context, q Querier, id int64, now time.Time) (*models.Poll, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, start_date, end_date, description, last_change
		FROM poll WHERE id = $1 AND start_date < $2 AND end_date > $2
	`, id, now)
	return scanPoll(ctx, q, row)
}

// ListPolls returns every poll with nested questions, oldest first.
func ListPolls(ctx context.Context, q Querier) ([]models.Poll, error) {
	return listPolls(ctx, q, `
		SELECT id, title, start_date, end_date, description, last_change
		FROM poll ORDER BY id
	`)
}

// ListActivePolls returns the polls whose window contains now.
func ListActivePolls(ctx context.Context, q Querier, now time.Time) ([]models.Poll, error) {
	return listPolls(ctx, q, `
		SELECT id, title, start_date, end_date, description, last_change
		FROM poll WHERE start_date < $1 AND end_date > $1 ORDER BY id
	`, now)
}

func listPolls(ctx context.Context, q Querier, query string, args ...any) ([]models.Poll, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Description, &p.LastChange); err != nil {
			return nil, err
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range polls {
		polls[i].Questions, err = loadQuestions(ctx, q, polls[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return polls, nil
}

func scanPoll(ctx context.Context, q Querier, row *sql.Row) (*models.Poll, error) {
	var p models.Poll
	err := row.Scan(&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Description, &p.LastChange)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Questions, err = loadQuestions(ctx, q, p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
