// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"

	"github.com/pahari-music/jukebot/models"
)

// MiscHandler serves /start, /quote and the unknown-command fallback.
type MiscHandler struct {
	env Env
}

func NewMiscHandler(env Env) *MiscHandler {
	return &MiscHandler{env: env}
}

const startText = `🎵 Welcome to the jukebox!

Discovery:
/recommend - today's pick (same for everyone, all day)
/random - a random song
/genre [name] - pick within a genre (no name lists genres)
/artist [name] - pick by artist
/search [keyword] - search song titles
/discover - personalized pick from your ratings
/similar - a song like the last one you saw

Your preferences:
/favorite - favorite the last shown song
/myfavorites - your favorites and 8+ rated songs
/myratings - everything you've rated
/blacklist - hide songs you never want again

Community:
/stats - song statistics
/toprated - community favorites (7.0+)
/battle - pit two songs against each other
/battlestats - battle leaderboard
/trivia - song trivia quiz

/quote - a random music quote

Rate songs 1-10 in the poll after each pick. The more you rate, the
better /discover gets!`

// Start handles /start: the command overview.
func (h *MiscHandler) Start(ev models.CommandEvent) {
	slog.Info("start command", "responder_id", ev.ResponderID, "chat_id", ev.ChatID)
	h.env.reply(ev.ChatID, startText)
}

// Quote handles /quote: a random line from the quotes file.
func (h *MiscHandler) Quote(ev models.CommandEvent) {
	slog.Info("quote command", "responder_id", ev.ResponderID)

	if len(h.env.Quotes) == 0 {
		h.env.reply(ev.ChatID, "No quotes available.")
		return
	}
	quote := h.env.Quotes[newRand().Intn(len(h.env.Quotes))]
	h.env.reply(ev.ChatID, fmt.Sprintf("🎵 %s", quote))
}

// Unknown handles any command name without a registered handler.
func (h *MiscHandler) Unknown(ev models.CommandEvent) {
	slog.Info("unknown command", "command", ev.Name, "responder_id", ev.ResponderID)
	h.env.reply(ev.ChatID, fmt.Sprintf("Unknown command: /%s. Try /start for help or /recommend for today's song.", ev.Name))
}
