// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database dialects. The same query text runs against both:
// placeholders are written $1..$n in strictly increasing, single-use
// order, which lib/pq binds ordinally and sqlite resolves by first
// occurrence.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Open connects using the driver for the given dialect. For sqlite it
// also switches on foreign key enforcement, which cascade deletes
// depend on.
func Open(dialect, url string) (*sql.DB, error) {
	switch dialect {
	case DialectPostgres:
		return sql.Open("postgres", url)
	case DialectSQLite:
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown database type %q", dialect)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case DialectPostgres:
		schema = schemaPostgres
	case DialectSQLite:
		schema = schemaSQLite
	default:
		return fmt.Errorf("unknown database type %q", dialect)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schemaPostgres = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(150) NOT NULL,
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    description TEXT NOT NULL,
    last_change TIMESTAMP NOT NULL,
    CONSTRAINT period_check CHECK (end_date > start_date)
);

-- Questions
CREATE TABLE IF NOT EXISTS question (
    id BIGSERIAL PRIMARY KEY,
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    question_type VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_poll_id ON question(poll_id);

-- Options
CREATE TABLE IF NOT EXISTS option (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    description VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_option_question_id ON option(question_id);

-- Submissions
CREATE TABLE IF NOT EXISTS submission (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    poll_title VARCHAR(150) NOT NULL,
    poll_description TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, poll_id)
);

CREATE INDEX IF NOT EXISTS idx_submission_user_id ON submission(user_id);

-- Answers. question_id is a plain column: questions are replaced
-- wholesale on poll update, while answers keep the denormalized
-- question_text/question_type copy.
CREATE TABLE IF NOT EXISTS answer (
    id BIGSERIAL PRIMARY KEY,
    submission_id BIGINT NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    question_id BIGINT NOT NULL,
    question_text TEXT NOT NULL,
    question_type VARCHAR(100) NOT NULL,
    text TEXT NOT NULL DEFAULT '',
    UNIQUE (submission_id, question_id)
);

-- Selected options. option_id goes NULL if the option is later
-- deleted; the answer survives with its description copy.
CREATE TABLE IF NOT EXISTS selected_option (
    id BIGSERIAL PRIMARY KEY,
    answer_id BIGINT NOT NULL REFERENCES answer(id) ON DELETE CASCADE,
    option_id BIGINT REFERENCES option(id) ON DELETE SET NULL,
    description VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_selected_option_answer_id ON selected_option(answer_id);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS poll (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    description TEXT NOT NULL,
    last_change TIMESTAMP NOT NULL,
    CHECK (end_date > start_date)
);

CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    question_type TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_poll_id ON question(poll_id);

CREATE TABLE IF NOT EXISTS option (
    id INTEGER PRIMARY KEY,
    question_id INTEGER NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_option_question_id ON option(question_id);

CREATE TABLE IF NOT EXISTS submission (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    poll_title TEXT NOT NULL,
    poll_description TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, poll_id)
);

CREATE INDEX IF NOT EXISTS idx_submission_user_id ON submission(user_id);

CREATE TABLE IF NOT EXISTS answer (
    id INTEGER PRIMARY KEY,
    submission_id INTEGER NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL,
    question_text TEXT NOT NULL,
    question_type TEXT NOT NULL,
    text TEXT NOT NULL DEFAULT '',
    UNIQUE (submission_id, question_id)
);

CREATE TABLE IF NOT EXISTS selected_option (
    id INTEGER PRIMARY KEY,
    answer_id INTEGER NOT NULL REFERENCES answer(id) ON DELETE CASCADE,
    option_id INTEGER REFERENCES option(id) ON DELETE SET NULL,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_selected_option_answer_id ON selected_option(answer_id);
`
