// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package models

import "time"

// Question type constants. Any other value is rejected at write time.
const (
	QuestionText           = "text"
	QuestionChoice         = "choice"
	QuestionMultiplyChoice = "multiply_choice"
)

// QuestionTypes lists every valid question_type value.
var QuestionTypes = []string{QuestionText, QuestionChoice, QuestionMultiplyChoice}

// ValidQuestionType reports whether t is a member of the closed
// question_type set.
func ValidQuestionType(t string) bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MaxOptionDescription is the length cap on an option description.
const MaxOptionDescription = 100

// Request types
//
// Input structs use pointer fields where the store needs to tell
// "absent" apart from "zero": partial updates, the start_date
// immutability check, and the options-payload-present rule for text
// questions all depend on field presence.

type PollInput struct {
	Title       *string         `json:"title"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Description *string         `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

// HasQuestions reports whether a questions list was supplied at all.
// A non-nil empty list still replaces every existing question.
func (in PollInput) HasQuestions() bool { return in.Questions != nil }

type QuestionInput struct {
	Text         *string       `json:"text"`
	QuestionType *string       `json:"question_type"`
	Options      []OptionInput `json:"options"`
}

func (in QuestionInput) HasOptions() bool { return in.Options != nil }

type OptionInput struct {
	Description string `json:"description"`
}

type SubmissionInput struct {
	UserID  *int64        `json:"user_id"`
	Answers []AnswerInput `json:"answers"`
}

type AnswerInput struct {
	Question        *int64  `json:"question"`
	Text            string  `json:"text"`
	SelectedOptions []int64 `json:"selected_options"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error envelope. Details carries the
// full list when a batch validation collects more than one failure.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Domain types

type Poll struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Description string     `json:"description"`
	LastChange  time.Time  `json:"last_change"`
	Questions   []Question `json:"questions"`
}

// Active reports whether now falls inside the poll's submission
// window [start_date, end_date).
func (p Poll) Active(now time.Time) bool {
	return p.StartDate.Before(now) && p.EndDate.After(now)
}

// Question carries Options as a slice pointer so the rendered JSON
// omits the field entirely for text questions while a choice question
// with no options still serializes as an empty array.
type Question struct {
	ID           int64     `json:"id"`
	PollID       int64     `json:"-"`
	Text         string    `json:"text"`
	QuestionType string    `json:"question_type"`
	Options      *[]Option `json:"options,omitempty"`
}

type Option struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type Submission struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	PollID          int64     `json:"poll"`
	PollTitle       string    `json:"poll_title"`
	PollDescription string    `json:"poll_description"`
	SubmittedAt     time.Time `json:"date"`
	Answers         []Answer  `json:"answers"`
}

// Answer renders in the type-specific shape: text answers expose
// text, choice and multiply_choice answers expose selected_options
// and omit text.
type Answer struct {
	ID              int64             `json:"-"`
	QuestionID      int64             `json:"question"`
	QuestionText    string            `json:"question_text"`
	QuestionType    string            `json:"question_type"`
	Text            string            `json:"text,omitempty"`
	SelectedOptions *[]SelectedOption `json:"selected_options,omitempty"`
}

// SelectedOption keeps a denormalized description so the answer
// survives later deletion of the option it points at.
type SelectedOption struct {
	OptionID    *int64 `json:"option"`
	Description string `json:"description"`
}
