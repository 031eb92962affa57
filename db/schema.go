// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all feedback tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as unix seconds (BIGINT) so the schema reads
// identically under sqlite and postgres.
const schema = `
-- Ratings (communal: one row per song/responder pair, later write wins)
CREATE TABLE IF NOT EXISTS rating (
    song_id INTEGER NOT NULL,
    responder_id TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
    rated_at BIGINT NOT NULL,
    PRIMARY KEY (song_id, responder_id)
);

CREATE INDEX IF NOT EXISTS idx_rating_responder ON rating(responder_id);

-- Explicit favorites (append order preserved via added_at)
CREATE TABLE IF NOT EXISTS favorite (
    responder_id TEXT NOT NULL,
    song_id INTEGER NOT NULL,
    added_at BIGINT NOT NULL,
    PRIMARY KEY (responder_id, song_id)
);

-- Blacklist (filters candidates in every selection mode)
CREATE TABLE IF NOT EXISTS blacklist (
    responder_id TEXT NOT NULL,
    song_id INTEGER NOT NULL,
    added_at BIGINT NOT NULL,
    PRIMARY KEY (responder_id, song_id)
);

-- Last presented song per responder (the referent for /favorite and /similar)
CREATE TABLE IF NOT EXISTS last_shown (
    responder_id TEXT PRIMARY KEY,
    song_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    shown_at BIGINT NOT NULL
);

-- Battles (song snapshots denormalized so removed songs stay renderable)
CREATE TABLE IF NOT EXISTS battle (
    id TEXT PRIMARY KEY,
    song1_id INTEGER NOT NULL,
    song1_title TEXT NOT NULL,
    song1_artist TEXT NOT NULL,
    song2_id INTEGER NOT NULL,
    song2_title TEXT NOT NULL,
    song2_artist TEXT NOT NULL,
    started_at BIGINT NOT NULL
);

-- Battle votes (one per responder per battle, later vote wins)
CREATE TABLE IF NOT EXISTS battle_vote (
    battle_id TEXT NOT NULL REFERENCES battle(id) ON DELETE CASCADE,
    responder_id TEXT NOT NULL,
    choice INTEGER NOT NULL CHECK (choice IN (0, 1)),
    voted_at BIGINT NOT NULL,
    PRIMARY KEY (battle_id, responder_id)
);

CREATE INDEX IF NOT EXISTS idx_battle_vote_battle ON battle_vote(battle_id);
`
