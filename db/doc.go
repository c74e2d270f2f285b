/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured dialect:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported dialects are "postgres" (lib/pq) and "sqlite"
(modernc.org/sqlite, no cgo). For sqlite, Open switches on foreign key
enforcement so cascade deletes behave like postgres.

# Schema Creation

CreateSchema initializes all required tables for the dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: title, window, description (CHECK end_date > start_date)
  - question: prompts per poll, cascade-deleted with it
  - option: choices per question, cascade-deleted with it
  - submission: one per (user_id, poll_id), denormalized poll copy
  - answer: one per (submission_id, question_id), denormalized question copy
  - selected_option: chosen options, option_id nullable

# Relationships

	poll 1──* question 1──* option
	submission 1──* answer 1──* selected_option

Deleting a poll removes its submissions, but replacing a poll's
questions never touches existing answers: answer rows keep plain
question_id values plus denormalized text/type copies, and
selected_option.option_id is set NULL when the option disappears.
*/
package db
