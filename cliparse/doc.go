// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p            Server port
	-d            Database URL or file path
	-t            Database type (sqlite or postgres)
	-b            Transport bridge base URL
	-catalog      Song catalog JSON path
	-quotes       Quotes JSON path
	-legacy-state Legacy feedback JSON to import on first run
	-admins       Comma-separated admin responder IDs

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	BRIDGE_URL        → -b
	CATALOG_PATH      → -catalog
	QUOTES_PATH       → -quotes
	LEGACY_STATE_PATH → -legacy-state
	ADMIN_IDS         → -admins

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - BRIDGE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - DATABASE_URL must be provided for postgres (sqlite defaults to jukebot.db)
*/
package cliparse
