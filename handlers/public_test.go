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

func TestPublicListPolls(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPublicHandler(db, cfg)

	activeID := testutil.CreateTestPoll(t, db, "active")
	testutil.CreateTestPoll(t, db, "future")
	testutil.CreateTestPoll(t, db, "past")

	req := testutil.MakeRequest("GET", "/api/v1/polls", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	if len(polls) != 1 {
		t.Fatalf("Expected only the active poll, got %d polls", len(polls))
	}
	if polls[0].ID != activeID {
		t.Errorf("Expected poll %d, got %d", activeID, polls[0].ID)
	}
}

func TestPublicGetPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPublicHandler(db, cfg)

	tests := []struct {
		name           string
		window         string
		expectedStatus int
	}{
		{"active poll is visible", "active", http.StatusOK},
		{"future poll looks missing", "future", http.StatusNotFound},
		{"past poll looks missing", "past", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pollID := testutil.CreateTestPoll(t, db, tt.window)
			path := strconv.FormatInt(pollID, 10)

			req := testutil.MakeRequest("GET", "/api/v1/polls/"+path, nil, nil)
			req.SetPathValue("id", path)
			w := httptest.NewRecorder()
			handler.Get(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// Genuinely missing poll has the same shape as a closed one
	req := testutil.MakeRequest("GET", "/api/v1/polls/9999", nil, nil)
	req.SetPathValue("id", "9999")
	w := httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
