// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate computes the report views over feedback snapshots.

All functions are pure: they take a ratings or battles snapshot plus
the catalog and return sorted, capped rows. Songs that have left the
catalog are skipped wherever they appear.

  - Stats: communal mean and vote count per song
  - TopRated: songs with 2+ voters and a 7.0+ mean
  - MyRatings: one responder's ratings, highest first
  - MyFavorites: explicit favorites merged with 8+ rated songs
  - BattleLeaderboard: wins/losses per song; only battles with a strict
    vote majority resolve
  - VotesByUser: a responder's battle participation count
*/
package aggregate
