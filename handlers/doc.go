// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the command handlers of the jukebot engine.

# Handler Types

Each handler is a struct over the shared Env (catalog, state, registry,
messenger, quotes, config):

  - DiscoveryHandler: /recommend, /random, /genre, /artist, /search,
    /discover, /similar
  - PrefsHandler: /favorite, /myfavorites, /blacklist, /myratings
  - StatsHandler: /stats, /toprated, /battlestats
  - BattleHandler: /battle, /trivia
  - AdminHandler: /add, /remove, /reload (allowlist gated)
  - MiscHandler: /start, /quote, unknown-command fallback

Handlers are created via constructor functions that accept Env:

	discovery := handlers.NewDiscoveryHandler(env)

# Recommendation Flow

Every recommendation shares the same tail: the song is written as the
responder's last-shown referent, the song card is sent, then a 1-10
rating poll opens and its context is registered under the poll ID.
When a poll-answer event arrives for that ID, the feedback package
converts the chosen option index to a rating.

# Error Handling

Handlers never return errors. Selection failures become plain-language
replies; storage and delivery failures are logged and answered with a
generic message, so a broken database never crashes a command.

# Concurrency

Handlers run on the HTTP server's goroutines, so two commands can run
at once. Every shared structure behind Env locks internally, and each
handler call draws from its own PRNG.
*/
package handlers
