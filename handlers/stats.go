// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/pahari-music/jukebot/aggregate"
	"github.com/pahari-music/jukebot/models"
)

// StatsHandler serves the communal report commands: /stats, /toprated,
// /battlestats.
type StatsHandler struct {
	env Env
}

func NewStatsHandler(env Env) *StatsHandler {
	return &StatsHandler{env: env}
}

// Stats handles /stats: per-song mean and vote count, best first.
func (h *StatsHandler) Stats(ev models.CommandEvent) {
	slog.Info("stats command", "responder_id", ev.ResponderID)

	ratings, err := h.env.State.Ratings()
	if err != nil {
		slog.Error("failed to load ratings", "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if len(ratings) == 0 {
		h.env.reply(ev.ChatID, "No ratings available yet. Start rating some songs!")
		return
	}

	stats := aggregate.Stats(ratings, h.env.Catalog.All())
	if len(stats) == 0 {
		h.env.reply(ev.ChatID, "No valid ratings found.")
		return
	}

	var b strings.Builder
	b.WriteString("📊 Song Statistics:\n\n")
	for i, s := range stats {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, s.Song.Title, s.Song.Artist)
		fmt.Fprintf(&b, "   ⭐ %.1f/10 (%d votes)\n", s.Mean, s.VoteCount)
	}
	h.env.reply(ev.ChatID, b.String())
}

// TopRated handles /toprated: songs with 2+ voters and a 7.0+ mean.
func (h *StatsHandler) TopRated(ev models.CommandEvent) {
	slog.Info("toprated command", "responder_id", ev.ResponderID)

	ratings, err := h.env.State.Ratings()
	if err != nil {
		slog.Error("failed to load ratings", "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if len(ratings) == 0 {
		h.env.reply(ev.ChatID, "Not enough ratings yet (need at least 2 votes per song).")
		return
	}

	top := aggregate.TopRated(ratings, h.env.Catalog.All())
	if len(top) == 0 {
		h.env.reply(ev.ChatID, "No songs with 7.0+ average rating yet.")
		return
	}

	var b strings.Builder
	b.WriteString("🏆 Top Rated Songs (7.0+):\n\n")
	for i, s := range top {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, s.Song.Title, s.Song.Artist)
		fmt.Fprintf(&b, "   ⭐ %.1f/10 (%d votes)\n", s.Mean, s.VoteCount)
	}
	h.env.reply(ev.ChatID, b.String())
}

// BattleStats handles /battlestats: the win/loss leaderboard plus the
// responder's own participation count.
func (h *StatsHandler) BattleStats(ev models.CommandEvent) {
	slog.Info("battlestats command", "responder_id", ev.ResponderID)

	battles, err := h.env.State.Battles()
	if err != nil {
		slog.Error("failed to load battles", "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if len(battles) == 0 {
		h.env.reply(ev.ChatID, "No battle data available yet! Start some battles with /battle")
		return
	}

	records, resolved := aggregate.BattleLeaderboard(battles, h.env.Catalog.All())
	if len(records) == 0 {
		h.env.reply(ev.ChatID, "No completed battles yet! Vote in some battles to see stats.")
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var b strings.Builder
	fmt.Fprintf(&b, "🥊 BATTLE LEADERBOARD (%s battles)\n\n", humanize.Comma(int64(resolved)))
	for i, rec := range records {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "%s %s — %s\n", rank, rec.Song.Title, rec.Song.Artist)
		fmt.Fprintf(&b, "   🏆 %dW-%dL (%.1f%% win rate)\n", rec.Wins, rec.Losses, rec.WinRate)
	}

	if voted := aggregate.VotesByUser(battles, ev.ResponderID); voted > 0 {
		fmt.Fprintf(&b, "\n📊 You've voted in %d battles", voted)
	}
	h.env.reply(ev.ChatID, b.String())
}
