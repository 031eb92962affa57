// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

The schema includes:

  - rating: One rating per (song, responder)
  - favorite: Explicit favorites per responder
  - blacklist: Hidden songs per responder
  - last_shown: The responder's current referent song
  - battle: Matchup metadata, denormalized with song titles
  - battle_vote: One vote per (battle, responder)

# Relationships

	battle 1──* battle_vote (ON DELETE CASCADE)

Songs live in the JSON catalog, not the database, so feedback rows
reference song IDs without a foreign key; a removed song leaves soft
references that readers skip.

# Portability

Timestamps are stored as unix seconds in BIGINT columns and every
statement sticks to the SQL subset both sqlite and postgres accept, so
the same schema string serves both drivers.
*/
package db
