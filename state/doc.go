// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package state persists all mutable feedback: ratings, favorites,
blacklists, last-shown markers and battle votes.

# Write Granularity

Every mutation is a single-key UPSERT (or one transaction, for battle
votes). Two responders answering rating polls at the same instant write
different rows, so neither write can be lost - there is no read-modify-
write of a shared document anywhere in this package.

# Dialects

The store runs on sqlite (modernc.org/sqlite, pure Go) or postgres
(lib/pq). Queries are written with ? placeholders and rebound to $n for
postgres; timestamps are unix seconds in BIGINT columns so both drivers
scan them identically.

# Legacy Import

ImportLegacy reads the old single-document JSON state file and replays
it through the store's own write methods. main runs it only when the
store is empty, so the import can never clobber live rows.
*/
package state
