// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

/*
Package main provides the entry point for the polls API server.

The polls API manages time-windowed polls built from typed questions
(free text, single choice, multiple choice) and collects one submission
per user per poll, validated as a batch against the poll's question set.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:polls.db JWT_SECRET=... ADMIN_USER=admin ADMIN_PASSWORD=... go run .

Or with flags:

	go run . -p 8080 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string or sqlite file path
  - JWT_SECRET (-jwt-secret): Secret for signing session tokens
  - ADMIN_USER (-admin-user): Admin username
  - ADMIN_PASSWORD (-admin-password): Admin password

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, questions, submissions, login)
  - store: Transactional persistence and validation
  - router: Route definitions using Go 1.22+ routing
  - middleware: Admin auth, logging, CORS, JSON helpers
  - models: Request/response types
  - auth: JWT issuing and validation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing
  - openapi: Embedded API description

See package documentation for each component.
*/
package main
