// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/akarpov/polls-api/models"
	"github.com/akarpov/polls-api/testutil"
)

// TestFullPollWorkflow walks the complete lifecycle:
// 1. Create a poll with nested questions
// 2. Add another question
// 3. Public listing shows the active poll
// 4. A user submits answers
// 5. The same user resubmits and replaces the first submission
// 6. The user's history shows one submission
// 7. Delete the poll; submissions cascade away with it
func TestFullPollWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	pollHandler := NewPollHandler(db, cfg)
	questionHandler := NewQuestionHandler(db, cfg)
	publicHandler := NewPublicHandler(db, cfg)
	submissionHandler := NewSubmissionHandler(db, cfg)

	now := time.Now().UTC()

	// Step 1: Create a poll with one choice question
	createBody := map[string]interface{}{
		"title":       "Team offsite",
		"description": "Planning the offsite",
		"start_date":  now.Add(-time.Hour),
		"end_date":    now.Add(time.Hour),
		"questions": []map[string]interface{}{
			{
				"text":          "Pick a city",
				"question_type": "choice",
				"options": []map[string]string{
					{"description": "Lisbon"},
					{"description": "Prague"},
				},
			},
		},
	}
	req := testutil.MakeRequest("POST", "/api/v1/admin/polls", createBody, nil)
	w := httptest.NewRecorder()
	pollHandler.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}
	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	pollPath := strconv.FormatInt(poll.ID, 10)
	choiceQ := poll.Questions[0].ID
	options := *poll.Questions[0].Options
	t.Logf("Step 1 - Created poll %d", poll.ID)

	// Step 2: Add a text question
	questionBody := map[string]interface{}{
		"text":          "Anything else?",
		"question_type": "text",
	}
	req = testutil.MakeRequest("POST", "/api/v1/admin/polls/"+pollPath+"/questions", questionBody, nil)
	req.SetPathValue("poll_id", pollPath)
	w = httptest.NewRecorder()
	questionHandler.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 2 - Add question failed: %d - %s", w.Code, w.Body.String())
	}
	var textQuestion models.Question
	testutil.AssertJSON(t, w, &textQuestion)

	// Step 3: The poll shows up in the public listing
	req = testutil.MakeRequest("GET", "/api/v1/polls", nil, nil)
	w = httptest.NewRecorder()
	publicHandler.List(w, req)
	var publicPolls []models.Poll
	testutil.AssertJSON(t, w, &publicPolls)
	if len(publicPolls) != 1 || publicPolls[0].ID != poll.ID {
		t.Fatalf("Step 3 - Expected the poll in the public listing, got %v", publicPolls)
	}
	if len(publicPolls[0].Questions) != 2 {
		t.Fatalf("Step 3 - Expected 2 questions, got %d", len(publicPolls[0].Questions))
	}

	// Step 4: Submit answers for every question
	submitBody := map[string]interface{}{
		"user_id": 7,
		"answers": []map[string]interface{}{
			{"question": choiceQ, "selected_options": []int64{options[0].ID}},
			{"question": textQuestion.ID, "text": "Bring sunscreen"},
		},
	}
	req = testutil.MakeRequest("POST", "/api/v1/polls/"+pollPath+"/submissions", submitBody, nil)
	req.SetPathValue("poll_id", pollPath)
	w = httptest.NewRecorder()
	submissionHandler.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 4 - Submit failed: %d - %s", w.Code, w.Body.String())
	}
	var firstSub models.Submission
	testutil.AssertJSON(t, w, &firstSub)

	// Step 5: Resubmit with the other option
	submitBody["answers"] = []map[string]interface{}{
		{"question": choiceQ, "selected_options": []int64{options[1].ID}},
		{"question": textQuestion.ID, "text": "Changed my mind"},
	}
	req = testutil.MakeRequest("POST", "/api/v1/polls/"+pollPath+"/submissions", submitBody, nil)
	req.SetPathValue("poll_id", pollPath)
	w = httptest.NewRecorder()
	submissionHandler.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 5 - Resubmit failed: %d - %s", w.Code, w.Body.String())
	}
	var secondSub models.Submission
	testutil.AssertJSON(t, w, &secondSub)
	if secondSub.ID == firstSub.ID {
		t.Error("Step 5 - Expected a fresh submission ID on resubmit")
	}

	// Step 6: History shows exactly the replacement
	req = testutil.MakeRequest("GET", "/api/v1/users/7/submissions", nil, nil)
	req.SetPathValue("user_id", "7")
	w = httptest.NewRecorder()
	submissionHandler.ListForUser(w, req)
	var history []models.Submission
	testutil.AssertJSON(t, w, &history)
	if len(history) != 1 {
		t.Fatalf("Step 6 - Expected 1 submission, got %d", len(history))
	}
	if history[0].ID != secondSub.ID {
		t.Error("Step 6 - Expected the second submission to be the live one")
	}
	for _, a := range history[0].Answers {
		if a.QuestionID == textQuestion.ID && a.Text != "Changed my mind" {
			t.Errorf("Step 6 - Expected the replaced text answer, got %q", a.Text)
		}
	}

	// Step 7: Delete the poll; submissions cascade away
	req = testutil.MakeRequest("DELETE", "/api/v1/admin/polls/"+pollPath, nil, nil)
	req.SetPathValue("id", pollPath)
	w = httptest.NewRecorder()
	pollHandler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = testutil.MakeRequest("GET", "/api/v1/users/7/submissions", nil, nil)
	req.SetPathValue("user_id", "7")
	w = httptest.NewRecorder()
	submissionHandler.ListForUser(w, req)
	history = nil
	testutil.AssertJSON(t, w, &history)
	if len(history) != 0 {
		t.Errorf("Step 7 - Expected the submission to cascade away, got %d", len(history))
	}
}

// TestQuestionReplacementKeepsHistory verifies that replacing a poll's
// questions leaves recorded answers intact through their denormalized
// copies.
func TestQuestionReplacementKeepsHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	pollHandler := NewPollHandler(db, cfg)
	submissionHandler := NewSubmissionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	textQ := testutil.AddTestQuestion(t, db, pollID, "Original question", models.QuestionText)
	pollPath := strconv.FormatInt(pollID, 10)

	// Submit against the original question
	submitBody := map[string]interface{}{
		"user_id": 3,
		"answers": []map[string]interface{}{
			{"question": textQ, "text": "My answer"},
		},
	}
	req := testutil.MakeRequest("POST", "/api/v1/polls/"+pollPath+"/submissions", submitBody, nil)
	req.SetPathValue("poll_id", pollPath)
	w := httptest.NewRecorder()
	submissionHandler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Replace the question list wholesale
	patchBody := map[string]interface{}{
		"questions": []map[string]interface{}{
			{"text": "Brand new question", "question_type": "text"},
		},
	}
	req = testutil.MakeRequest("PATCH", "/api/v1/admin/polls/"+pollPath, patchBody, nil)
	req.SetPathValue("id", pollPath)
	w = httptest.NewRecorder()
	pollHandler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The recorded answer still reads with its original question text
	req = testutil.MakeRequest("GET", "/api/v1/users/3/submissions", nil, nil)
	req.SetPathValue("user_id", "3")
	w = httptest.NewRecorder()
	submissionHandler.ListForUser(w, req)
	var history []models.Submission
	testutil.AssertJSON(t, w, &history)
	if len(history) != 1 || len(history[0].Answers) != 1 {
		t.Fatalf("Expected the submission to survive, got %v", history)
	}
	a := history[0].Answers[0]
	if a.QuestionText != "Original question" {
		t.Errorf("Expected the denormalized question text, got %q", a.QuestionText)
	}
	if a.Text != "My answer" {
		t.Errorf("Expected the recorded answer, got %q", a.Text)
	}
}
