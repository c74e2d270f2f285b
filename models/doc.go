/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PollInput: title, start_date, end_date, description, nested questions
  - QuestionInput: text, question_type, nested options
  - OptionInput: description
  - SubmissionInput: user_id plus one answer per poll question
  - AnswerInput: question reference with text or selected_options
  - LoginRequest: admin credentials

Input types use pointer fields so handlers can distinguish an absent
field from a zero value (partial updates, immutability checks, and the
"no options with text questions" rule all depend on it).

# Domain Types

  - Poll: time-windowed survey with ordered questions
  - Question: one prompt of type text, choice, or multiply_choice
  - Option: selectable choice belonging to a question
  - Submission: a user's complete answer set for one poll
  - Answer: one response, rendered in a type-specific shape
  - SelectedOption: chosen option with a denormalized description

# Constants

Question types:

	QuestionText           = "text"
	QuestionChoice         = "choice"
	QuestionMultiplyChoice = "multiply_choice"

The set is closed: ValidQuestionType rejects everything else.
*/
package models
