// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the jukebot engine.

Jukebot is a group music recommendation engine for chat rooms: daily and
random picks, genre/artist/title search, personalized discovery, rating
polls, head-to-head song battles and trivia quizzes. The engine is
transport-agnostic - a separate bridge process owns the actual chat
connection and exchanges JSON events with this server over HTTP.

# Starting the Server

The server requires a transport bridge URL plus optional database settings:

	BRIDGE_URL=http://localhost:8081 go run main.go

Or with flags:

	go run main.go -p 3320 -b "http://localhost:8081" -t sqlite -d jukebot.db

A .env file in the working directory is loaded if present; real
environment variables take precedence.

# Configuration

Required settings:

  - BRIDGE_URL (-b): Transport bridge base URL

Optional settings:

  - PORT (-p): Server port (default: 3320)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): File path or connection string (default: jukebot.db)
  - CATALOG_PATH (-catalog): Song catalog JSON (default: songs.json)
  - QUOTES_PATH (-quotes): Quotes JSON (default: quotes.json)
  - LEGACY_STATE_PATH (-legacy-state): One-time feedback import file
  - ADMIN_IDS (-admins): Comma-separated admin responder IDs

# Architecture

The engine uses a handler-based architecture with dependency injection:

  - handlers: Command handlers (discovery, prefs, stats, battle, admin, misc)
  - router: Event endpoints using Go 1.22+ routing
  - feedback: Poll-answer processing
  - registry: Poll-to-context correlation
  - selection: Pure song selection algorithms
  - aggregate: Pure statistics over feedback snapshots
  - catalog: Song catalog file store
  - state: Feedback persistence (sqlite or postgres)
  - transport: Outbound bridge client
  - middleware: Logging, JSON helpers
  - models: Event and domain types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
