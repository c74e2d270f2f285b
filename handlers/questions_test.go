// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/akarpov/polls-api/models"
	"github.com/akarpov/polls-api/testutil"
)

func TestCreateQuestionHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	pollPath := strconv.FormatInt(pollID, 10)

	tests := []struct {
		name           string
		pollID         string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:   "valid choice question",
			pollID: pollPath,
			requestBody: map[string]interface{}{
				"text":          "Pick one",
				"question_type": "choice",
				"options": []map[string]string{
					{"description": "A"},
					{"description": "B"},
				},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "valid text question without options",
			pollID: pollPath,
			requestBody: map[string]interface{}{
				"text":          "Your thoughts",
				"question_type": "text",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "text question with options",
			pollID: pollPath,
			requestBody: map[string]interface{}{
				"text":          "Your thoughts",
				"question_type": "text",
				"options":       []map[string]string{{"description": "A"}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown question type",
			pollID: pollPath,
			requestBody: map[string]interface{}{
				"text":          "Q",
				"question_type": "ranking",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing poll",
			pollID: "9999",
			requestBody: map[string]interface{}{
				"text":          "Q",
				"question_type": "text",
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/v1/admin/polls/"+tt.pollID+"/questions", tt.requestBody, nil)
			req.SetPathValue("poll_id", tt.pollID)
			w := httptest.NewRecorder()

			handler.Create(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestGetQuestionHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	otherPollID := testutil.CreateTestPoll(t, db, "active")
	qID := testutil.AddTestQuestion(t, db, pollID, "Pick", models.QuestionChoice)
	testutil.AddTestOption(t, db, qID, "A")

	pollPath := strconv.FormatInt(pollID, 10)
	qPath := strconv.FormatInt(qID, 10)

	req := testutil.MakeRequest("GET", "/api/v1/admin/polls/"+pollPath+"/questions/"+qPath, nil, nil)
	req.SetPathValue("poll_id", pollPath)
	req.SetPathValue("id", qPath)
	w := httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var q models.Question
	testutil.AssertJSON(t, w, &q)
	if q.ID != qID {
		t.Errorf("Expected question %d, got %d", qID, q.ID)
	}

	// The same question under a different poll is a 404
	otherPath := strconv.FormatInt(otherPollID, 10)
	req = testutil.MakeRequest("GET", "/api/v1/admin/polls/"+otherPath+"/questions/"+qPath, nil, nil)
	req.SetPathValue("poll_id", otherPath)
	req.SetPathValue("id", qPath)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateQuestionHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	qID := testutil.AddTestQuestion(t, db, pollID, "Pick", models.QuestionChoice)
	testutil.AddTestOption(t, db, qID, "Old")

	pollPath := strconv.FormatInt(pollID, 10)
	qPath := strconv.FormatInt(qID, 10)

	// PATCH the options list; text and type stay
	body := map[string]interface{}{
		"options": []map[string]string{{"description": "New"}},
	}
	req := testutil.MakeRequest("PATCH", "/api/v1/admin/polls/"+pollPath+"/questions/"+qPath, body, nil)
	req.SetPathValue("poll_id", pollPath)
	req.SetPathValue("id", qPath)
	w := httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var q models.Question
	testutil.AssertJSON(t, w, &q)
	if q.Text != "Pick" {
		t.Errorf("PATCH should keep the text, got %q", q.Text)
	}
	if q.Options == nil || len(*q.Options) != 1 || (*q.Options)[0].Description != "New" {
		t.Error("Expected the option list to be replaced with 'New'")
	}

	// PUT without required fields fails
	req = testutil.MakeRequest("PUT", "/api/v1/admin/polls/"+pollPath+"/questions/"+qPath, body, nil)
	req.SetPathValue("poll_id", pollPath)
	req.SetPathValue("id", qPath)
	w = httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteQuestionHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	qID := testutil.AddTestQuestion(t, db, pollID, "Doomed", models.QuestionText)

	pollPath := strconv.FormatInt(pollID, 10)
	qPath := strconv.FormatInt(qID, 10)

	req := testutil.MakeRequest("DELETE", "/api/v1/admin/polls/"+pollPath+"/questions/"+qPath, nil, nil)
	req.SetPathValue("poll_id", pollPath)
	req.SetPathValue("id", qPath)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListQuestionsHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(db, cfg)

	pollID := testutil.CreateTestPoll(t, db, "active")
	testutil.AddTestQuestion(t, db, pollID, "First", models.QuestionText)
	testutil.AddTestQuestion(t, db, pollID, "Second", models.QuestionText)

	pollPath := strconv.FormatInt(pollID, 10)
	req := testutil.MakeRequest("GET", "/api/v1/admin/polls/"+pollPath+"/questions", nil, nil)
	req.SetPathValue("poll_id", pollPath)
	w := httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var questions []models.Question
	testutil.AssertJSON(t, w, &questions)
	if len(questions) != 2 {
		t.Errorf("Expected 2 questions, got %d", len(questions))
	}

	// Listing under a missing poll is a 404, not an empty list
	req = testutil.MakeRequest("GET", "/api/v1/admin/polls/9999/questions", nil, nil)
	req.SetPathValue("poll_id", "9999")
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
