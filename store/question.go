// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akarpov/polls-api/models"
)

// validateQuestion checks the shape of a single question payload.
// The text/options exclusion rule lives with the callers because on
// partial updates it depends on the stored question type.
func validateQuestion(in models.QuestionInput, partial bool) []string {
	var errs []string
	if !partial {
		if in.Text == nil || *in.Text == "" {
			errs = append(errs, "question text is required")
		}
		if in.QuestionType == nil {
			errs = append(errs, "question_type is required")
		}
	}
	if in.QuestionType != nil && !models.ValidQuestionType(*in.QuestionType) {
		errs = append(errs, fmt.Sprintf("%q is not a valid question_type", *in.QuestionType))
	}
	if in.QuestionType != nil && *in.QuestionType == models.QuestionText && in.HasOptions() {
		errs = append(errs, fmt.Sprintf(`"options" should be empty with question_type %q`, models.QuestionText))
	}
	for _, opt := range in.Options {
		if opt.Description == "" {
			errs = append(errs, "option description is required")
		} else if len(opt.Description) > models.MaxOptionDescription {
			errs = append(errs, fmt.Sprintf("option description must be at most %d characters", models.MaxOptionDescription))
		}
	}
	return errs
}

// CreateQuestion validates and persists one question with its options
// under an existing poll.
func CreateQuestion(ctx context.Context, tx *sql.Tx, pollID int64, in models.QuestionInput) (*models.Question, error) {
	if errs := validateQuestion(in, false); len(errs) > 0 {
		return nil, invalid(errs...)
	}
	q, err := insertQuestion(ctx, tx, pollID, in)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuestion applies a full or partial update. When the effective
// type is text, or an options list is supplied, existing options are
// deleted and recreated rather than diffed.
func UpdateQuestion(ctx context.Context, tx *sql.Tx, pollID, questionID int64, in models.QuestionInput, partial bool) (*models.Question, error) {
	existing, err := GetQuestion(ctx, tx, pollID, questionID)
	if err != nil {
		return nil, err
	}

	errs := validateQuestion(in, partial)
	effType := existing.QuestionType
	if in.QuestionType != nil {
		effType = *in.QuestionType
	}
	// Catches a partial update that leaves the type alone but still
	// attaches options to a text question.
	if in.QuestionType == nil && effType == models.QuestionText && in.HasOptions() {
		errs = append(errs, fmt.Sprintf(`"options" should be empty with question_type %q`, models.QuestionText))
	}
	if len(errs) > 0 {
		return nil, invalid(errs...)
	}

	if in.Text != nil {
		existing.Text = *in.Text
	}
	existing.QuestionType = effType

	if effType == models.QuestionText || in.HasOptions() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM option WHERE question_id = $1`, questionID); err != nil {
			return nil, err
		}
		if effType == models.QuestionText {
			existing.Options = nil
		} else {
			opts, err := insertOptions(ctx, tx, questionID, in.Options)
			if err != nil {
				return nil, err
			}
			existing.Options = &opts
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE question SET text = $1, question_type = $2 WHERE id = $3
	`, existing.Text, existing.QuestionType, questionID)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteQuestion removes one question (and its options) scoped to a
// poll.
func DeleteQuestion(ctx context.Context, q Querier, pollID, questionID int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM question WHERE id = $1 AND poll_id = $2`, questionID, pollID)
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

// GetQuestion loads one question with its options, scoped to a poll.
func GetQuestion(ctx context.Context, q Querier, pollID, questionID int64) (*models.Question, error) {
	questions, err := loadQuestionRows(ctx, q, `
		SELECT q.id, q.poll_id, q.text, q.question_type, o.id, o.description
		FROM question q
		LEFT JOIN option o ON o.question_id = q.id
		WHERE q.id = $1 AND q.poll_id = $2
		ORDER BY o.id
	`, questionID, pollID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return &questions[0], nil
}

// ListQuestions returns a poll's questions in insertion order.
func ListQuestions(ctx context.Context, q Querier, pollID int64) ([]models.Question, error) {
	return loadQuestions(ctx, q, pollID)
}

func loadQuestions(ctx context.Context, q Querier, pollID int64) ([]models.Question, error) {
	return loadQuestionRows(ctx, q, `
		SELECT q.id, q.poll_id, q.text, q.question_type, o.id, o.description
		FROM question q
		LEFT JOIN option o ON o.question_id = q.id
		WHERE q.poll_id = $1
		ORDER BY q.id, o.id
	`, pollID)
}

func loadQuestionRows(ctx context.Context, q Querier, query string, args ...any) ([]models.Question, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var (
			qID, pollID int64
			text, qType string
			optID       sql.NullInt64
			optDesc     sql.NullString
		)
		if err := rows.Scan(&qID, &pollID, &text, &qType, &optID, &optDesc); err != nil {
			return nil, err
		}
		if len(questions) == 0 || questions[len(questions)-1].ID != qID {
			question := models.Question{ID: qID, PollID: pollID, Text: text, QuestionType: qType}
			// The options field renders only for choice kinds; a text
			// question omits it entirely.
			if qType != models.QuestionText {
				opts := []models.Option{}
				question.Options = &opts
			}
			questions = append(questions, question)
		}
		cur := &questions[len(questions)-1]
		if optID.Valid && cur.Options != nil {
			*cur.Options = append(*cur.Options, models.Option{ID: optID.Int64, Description: optDesc.String})
		}
	}
	return questions, rows.Err()
}

func insertQuestions(ctx context.Context, tx *sql.Tx, pollID int64, ins []models.QuestionInput) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(ins))
	for _, in := range ins {
		q, err := insertQuestion(ctx, tx, pollID, in)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func insertQuestion(ctx context.Context, tx *sql.Tx, pollID int64, in models.QuestionInput) (models.Question, error) {
	q := models.Question{PollID: pollID, Text: *in.Text, QuestionType: *in.QuestionType}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO question (poll_id, text, question_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pollID, q.Text, q.QuestionType).Scan(&q.ID)
	if err != nil {
		return models.Question{}, err
	}
	if q.QuestionType != models.QuestionText {
		opts, err := insertOptions(ctx, tx, q.ID, in.Options)
		if err != nil {
			return models.Question{}, err
		}
		q.Options = &opts
	}
	return q, nil
}

func insertOptions(ctx context.Context, tx *sql.Tx, questionID int64, ins []models.OptionInput) ([]models.Option, error) {
	opts := make([]models.Option, 0, len(ins))
	for _, in := range ins {
		opt := models.Option{Description: in.Description}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO option (question_id, description)
			VALUES ($1, $2)
			RETURNING id
		`, questionID, opt.Description).Scan(&opt.ID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}
