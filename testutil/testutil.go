// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akarpov/polls-api/auth"
	"github.com/akarpov/polls-api/cliparse"
	"github.com/akarpov/polls-api/db"
)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database; cache=shared keeps it alive
// for the whole connection pool, and a single connection keeps every
// query on the one in-memory instance.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := fmt.Sprintf("file:polls_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := db.Open(db.DialectSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8080,
		DatabaseURL:   "file:unused?mode=memory",
		DatabaseType:  db.DialectSQLite,
		JWTSecret:     "test-jwt-secret",
		AdminUser:     "admin",
		AdminPassword: "test-password",
	}
}

// AdminToken issues a valid admin JWT for the test configuration
func AdminToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, err := auth.NewManager(cfg.JWTSecret).Issue(cfg.AdminUser, true)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// CreateTestPoll creates a poll and returns its ID.
// window should be "active", "future", or "past".
func CreateTestPoll(t *testing.T, conn *sql.DB, window string) int64 {
	t.Helper()

	now := time.Now().UTC()
	var start, end time.Time
	switch window {
	case "active":
		start, end = now.Add(-time.Hour), now.Add(time.Hour)
	case "future":
		start, end = now.Add(time.Hour), now.Add(2*time.Hour)
	case "past":
		start, end = now.Add(-2*time.Hour), now.Add(-time.Hour)
	default:
		t.Fatalf("Unknown poll window %q", window)
	}

	var pollID int64
	err := conn.QueryRow(`
		INSERT INTO poll (title, description, start_date, end_date, last_change)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "Test Poll", "A test poll", start, end, now).Scan(&pollID)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestQuestion adds a question to a poll and returns the question ID
func AddTestQuestion(t *testing.T, conn *sql.DB, pollID int64, text, questionType string) int64 {
	t.Helper()

	var questionID int64
	err := conn.QueryRow(`
		INSERT INTO question (poll_id, text, question_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pollID, text, questionType).Scan(&questionID)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestOption adds an option to a question and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, questionID int64, description string) int64 {
	t.Helper()

	var optionID int64
	err := conn.QueryRow(`
		INSERT INTO option (question_id, description)
		VALUES ($1, $2)
		RETURNING id
	`, questionID, description).Scan(&optionID)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
