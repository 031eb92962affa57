// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selection implements the song selection algorithms.

Everything here is a pure function over a song slice: no storage, no
clock reads (callers pass the time), no global PRNG (callers pass a
*rand.Rand). That keeps every algorithm unit-testable with a seeded
source.

# Selection Modes

  - DailyPick: deterministic - calendar days since 2024-01-01, floor
    modulo the candidate count; the whole group sees the same song all
    day
  - RandomPick: uniform over candidates
  - GenreFilter: uniform within an exact (case-insensitive) genre
  - ArtistSearch: substring match on artist, uniform among matches
  - TitleSearch: substring match on title, returns all matches
  - BattlePair: two distinct candidates without replacement
  - DiscoveryPick: preference-weighted shortlist from the responder's
    7+ ratings (genre weight 0.7, artist weight 0.9), uniform within
    the top max(5, n/3)
  - SimilarPick: same artist beats same genre as the similarity tier
  - TriviaQuestion: a four-option quiz about a random song

# Failure Taxonomy

Each mode returns a sentinel error naming exactly what was missing
(ErrNoSongs, ErrAllBlacklisted, ErrInsufficientData, ...), so handlers
can reply with the right guidance instead of a generic failure.
*/
package selection
