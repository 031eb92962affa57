// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines event, domain, and report types for the engine.

# Event Types

Types for parsing inbound bridge JSON:

  - CommandEvent: name, args, chat_id, responder_id
  - PollAnswerEvent: poll_id, responder_id, option_indexes

# Domain Types

  - Song: catalog entry (Year 0 = unknown, URL "" = none)
  - LastShown: a responder's referent song
  - Battle, BattleSide: a head-to-head matchup with votes
  - RatingContext, BattleContext: pending poll contexts
  - Trivia: a quiz question with its correct index

# Report Types

  - SongStats: communal mean and vote count
  - RatingEntry, FavoriteEntry, BattleRecord: per-responder and
    leaderboard rows

# Constants

Ratings run MinRating (1) to MaxRating (10). Poll context kinds are
ContextRating and ContextBattle.
*/
package models
