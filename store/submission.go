// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/akarpov/polls-api/models"
)

// answerWriter persists one validated answer of a specific question
// type. Dispatch is a plain lookup keyed by the closed question_type
// set.
type answerWriter func(ctx context.Context, tx *sql.Tx, submissionID int64, q models.Question, in models.AnswerInput) (models.Answer, error)

var answerWriters = map[string]answerWriter{
	models.QuestionText:           writeTextAnswer,
	models.QuestionChoice:         writeChoiceAnswer,
	models.QuestionMultiplyChoice: writeMultiplyChoiceAnswer,
}

// CreateSubmission replaces any prior submission by the same user for
// the same poll with a freshly validated one. The answer set is
// validated as a batch first - every missing, foreign, or duplicated
// question is reported in one rejection - then each answer goes
// through its type-specific writer. The caller's transaction makes
// the whole thing atomic.
func CreateSubmission(ctx context.Context, tx *sql.Tx, poll *models.Poll, in models.SubmissionInput) (*models.Submission, error) {
	if in.UserID == nil {
		return nil, invalid("user_id is required")
	}

	pollQuestions := make(map[int64]models.Question, len(poll.Questions))
	for _, q := range poll.Questions {
		pollQuestions[q.ID] = q
	}

	var errs []string
	answered := make(map[int64]bool, len(in.Answers))
	counted := 0
	for _, a := range in.Answers {
		if a.Question == nil {
			errs = append(errs, "answer is missing its question reference")
			continue
		}
		answered[*a.Question] = true
		counted++
	}
	if counted > len(answered) {
		errs = append(errs, "Duplicate questions in answers")
	}
	for _, id := range sortedIDs(pollQuestions) {
		if !answered[id] {
			errs = append(errs, fmt.Sprintf("No answer for question %d", id))
		}
	}
	var unwanted []int64
	for id := range answered {
		if _, ok := pollQuestions[id]; !ok {
			unwanted = append(unwanted, id)
		}
	}
	slices.Sort(unwanted)
	for _, id := range unwanted {
		errs = append(errs, fmt.Sprintf("Unwanted answer for question %d", id))
	}
	if len(errs) > 0 {
		return nil, invalid(errs...)
	}

	// One live submission per (user, poll): the old one goes away in
	// full, answers and selected options cascade with it.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM submission WHERE user_id = $1 AND poll_id = $2
	`, *in.UserID, poll.ID); err != nil {
		return nil, err
	}

	sub := &models.Submission{
		UserID:          *in.UserID,
		PollID:          poll.ID,
		PollTitle:       poll.Title,
		PollDescription: poll.Description,
		SubmittedAt:     time.Now().UTC(),
	}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO submission (user_id, poll_id, poll_title, poll_description, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, sub.UserID, sub.PollID, sub.PollTitle, sub.PollDescription, sub.SubmittedAt).Scan(&sub.ID)
	if err != nil {
		return nil, err
	}

	sub.Answers = make([]models.Answer, 0, len(in.Answers))
	for _, a := range in.Answers {
		q := pollQuestions[*a.Question]
		write := answerWriters[q.QuestionType]
		if write == nil {
			return nil, invalidf("question %d has unsupported type %q", q.ID, q.QuestionType)
		}
		answer, err := write(ctx, tx, sub.ID, q, a)
		if err != nil {
			return nil, err
		}
		sub.Answers = append(sub.Answers, answer)
	}
	return sub, nil
}

func writeTextAnswer(ctx context.Context, tx *sql.Tx, submissionID int64, q models.Question, in models.AnswerInput) (models.Answer, error) {
	if strings.TrimSpace(in.Text) == "" {
		return models.Answer{}, invalidf("text is required for question %d", q.ID)
	}
	if len(in.SelectedOptions) > 0 {
		return models.Answer{}, invalidf("selected_options not allowed for text question %d", q.ID)
	}
	answer := models.Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: q.QuestionType,
		Text:         in.Text,
	}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO answer (submission_id, question_id, question_text, question_type, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, submissionID, answer.QuestionID, answer.QuestionText, answer.QuestionType, answer.Text).Scan(&answer.ID)
	if err != nil {
		return models.Answer{}, err
	}
	return answer, nil
}

func writeChoiceAnswer(ctx context.Context, tx *sql.Tx, submissionID int64, q models.Question, in models.AnswerInput) (models.Answer, error) {
	if len(in.SelectedOptions) == 0 {
		return models.Answer{}, invalid("Empty select_options not allowed")
	}
	if len(in.SelectedOptions) != 1 {
		return models.Answer{}, invalid("More than 1 selected option for choice question")
	}
	return writeOptionsAnswer(ctx, tx, submissionID, q, in)
}

func writeMultiplyChoiceAnswer(ctx context.Context, tx *sql.Tx, submissionID int64, q models.Question, in models.AnswerInput) (models.Answer, error) {
	if len(in.SelectedOptions) == 0 {
		return models.Answer{}, invalid("Empty select_options not allowed")
	}
	return writeOptionsAnswer(ctx, tx, submissionID, q, in)
}

func writeOptionsAnswer(ctx context.Context, tx *sql.Tx, submissionID int64, q models.Question, in models.AnswerInput) (models.Answer, error) {
	// The submission was created moments ago, but an earlier answer
	// for the same question is still cleared before inserting.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM answer WHERE submission_id = $1 AND question_id = $2
	`, submissionID, q.ID); err != nil {
		return models.Answer{}, err
	}

	answer := models.Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: q.QuestionType,
	}
	err := tx.QueryRowContext(ctx, `
		INSERT INTO answer (submission_id, question_id, question_text, question_type, text)
		VALUES ($1, $2, $3, $4, '')
		RETURNING id
	`, submissionID, answer.QuestionID, answer.QuestionText, answer.QuestionType).Scan(&answer.ID)
	if err != nil {
		return models.Answer{}, err
	}

	selected := make([]models.SelectedOption, 0, len(in.SelectedOptions))
	for _, optionID := range in.SelectedOptions {
		var (
			ownerID     int64
			description string
		)
		err := tx.QueryRowContext(ctx, `
			SELECT question_id, description FROM option WHERE id = $1
		`, optionID).Scan(&ownerID, &description)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Answer{}, invalidf("option %d does not exist", optionID)
		}
		if err != nil {
			return models.Answer{}, err
		}
		if ownerID != q.ID {
			return models.Answer{}, invalid("option demands to other question")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO selected_option (answer_id, option_id, description)
			VALUES ($1, $2, $3)
		`, answer.ID, optionID, description); err != nil {
			return models.Answer{}, err
		}
		id := optionID
		selected = append(selected, models.SelectedOption{OptionID: &id, Description: description})
	}
	answer.SelectedOptions = &selected
	return answer, nil
}

// ListUserSubmissions returns every submission for a user, each with
// its answers in the type-specific read shape. No time filter.
func ListUserSubmissions(ctx context.Context, q Querier, userID int64) ([]models.Submission, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, user_id, poll_id, poll_title, poll_description, submitted_at
		FROM submission WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.UserID, &s.PollID, &s.PollTitle, &s.PollDescription, &s.SubmittedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].Answers, err = loadAnswers(ctx, q, subs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func loadAnswers(ctx context.Context, q Querier, submissionID int64) ([]models.Answer, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT a.id, a.question_id, a.question_text, a.question_type, a.text,
		       s.id, s.option_id, s.description
		FROM answer a
		LEFT JOIN selected_option s ON s.answer_id = a.id
		WHERE a.submission_id = $1
		ORDER BY a.id, s.id
	`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var (
			a       models.Answer
			selID   sql.NullInt64
			optID   sql.NullInt64
			selDesc sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.QuestionText, &a.QuestionType, &a.Text, &selID, &optID, &selDesc); err != nil {
			return nil, err
		}
		if len(answers) == 0 || answers[len(answers)-1].ID != a.ID {
			if a.QuestionType != models.QuestionText {
				selected := []models.SelectedOption{}
				a.SelectedOptions = &selected
			}
			answers = append(answers, a)
		}
		cur := &answers[len(answers)-1]
		if selID.Valid && cur.SelectedOptions != nil {
			var ref *int64
			if optID.Valid {
				id := optID.Int64
				ref = &id
			}
			*cur.SelectedOptions = append(*cur.SelectedOptions, models.SelectedOption{
				OptionID:    ref,
				Description: selDesc.String,
			})
		}
	}
	return answers, rows.Err()
}

func sortedIDs(m map[int64]models.Question) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
