// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/selection"
)

// DiscoveryHandler serves the recommendation commands: /recommend,
// /random, /genre, /artist, /search, /discover, /similar.
type DiscoveryHandler struct {
	env Env
}

func NewDiscoveryHandler(env Env) *DiscoveryHandler {
	return &DiscoveryHandler{env: env}
}

// Recommend handles /recommend: the deterministic daily pick.
func (h *DiscoveryHandler) Recommend(ev models.CommandEvent) {
	slog.Info("recommend command", "responder_id", ev.ResponderID, "chat_id", ev.ChatID)

	cands, ok := h.env.candidates(ev)
	if !ok {
		return
	}

	song, err := selection.DailyPick(cands, time.Now())
	if err != nil {
		slog.Error("daily pick failed", "error", err)
		h.env.reply(ev.ChatID, "Sorry, an error occurred while getting today's recommendation. Please try again later.")
		return
	}

	slog.Info("recommending song", "song_id", song.ID, "title", song.Title, "artist", song.Artist)
	h.env.presentSong(ev, song, "Today's pick")
}

// Random handles /random: a uniformly random non-blacklisted song.
func (h *DiscoveryHandler) Random(ev models.CommandEvent) {
	slog.Info("random command", "responder_id", ev.ResponderID)

	cands, ok := h.env.candidates(ev)
	if !ok {
		return
	}

	song, err := selection.RandomPick(cands, newRand())
	if err != nil {
		h.env.reply(ev.ChatID, "No songs available yet.")
		return
	}
	h.env.presentSong(ev, song, "Random pick")
}

// Genre handles /genre. Without an argument it lists the catalog's
// genres; with one it picks randomly within that genre.
func (h *DiscoveryHandler) Genre(ev models.CommandEvent) {
	slog.Info("genre command", "responder_id", ev.ResponderID)

	if len(ev.Args) == 0 {
		genres := h.env.Catalog.Genres()
		if len(genres) == 0 {
			h.env.reply(ev.ChatID, "No songs available yet.")
			return
		}
		h.env.reply(ev.ChatID, fmt.Sprintf("Available genres: %s\nUsage: /genre [genre_name]", strings.Join(genres, ", ")))
		return
	}

	cands, ok := h.env.candidates(ev)
	if !ok {
		return
	}

	genre := ev.Args[0]
	song, err := selection.GenreFilter(cands, genre, newRand())
	if err != nil {
		h.env.reply(ev.ChatID, fmt.Sprintf("No songs found for genre: %s", strings.ToLower(genre)))
		return
	}
	h.env.presentSong(ev, song, fmt.Sprintf("%s pick", titleCase(strings.ToLower(genre))))
}

// Artist handles /artist: case-insensitive substring match on artist.
func (h *DiscoveryHandler) Artist(ev models.CommandEvent) {
	slog.Info("artist command", "responder_id", ev.ResponderID)

	if len(ev.Args) == 0 {
		h.env.reply(ev.ChatID, "Usage: /artist [artist_name]")
		return
	}
	query := strings.Join(ev.Args, " ")

	cands, ok := h.env.candidates(ev)
	if !ok {
		return
	}

	song, matches, err := selection.ArtistSearch(cands, query, newRand())
	if err != nil {
		h.env.reply(ev.ChatID, fmt.Sprintf("No songs found for artist: %s", query))
		return
	}

	prefix := fmt.Sprintf("By %s", song.Artist)
	if matches > 1 {
		prefix = fmt.Sprintf("Random from %s (%d available)", song.Artist, matches)
	}
	h.env.presentSong(ev, song, prefix)
}

// Search handles /search: title keyword search over the whole catalog.
// A unique match is presented like a pick; multiple matches are listed
// (capped at 10) without a poll.
func (h *DiscoveryHandler) Search(ev models.CommandEvent) {
	slog.Info("search command", "responder_id", ev.ResponderID)

	if len(ev.Args) == 0 {
		h.env.reply(ev.ChatID, "Usage: /search [keyword]")
		return
	}
	keyword := strings.Join(ev.Args, " ")

	matches := selection.TitleSearch(h.env.Catalog.All(), keyword)
	switch {
	case len(matches) == 0:
		h.env.reply(ev.ChatID, fmt.Sprintf("No songs found with keyword: %s", keyword))
	case len(matches) == 1:
		h.env.presentSong(ev, matches[0], "Search result")
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Found %d songs matching '%s':\n\n", len(matches), keyword)
		for i, song := range matches {
			if i == 10 {
				break
			}
			fmt.Fprintf(&b, "%d. %s — %s\n", i+1, song.Title, song.Artist)
		}
		if len(matches) > 10 {
			fmt.Fprintf(&b, "\n... and %d more", len(matches)-10)
		}
		h.env.reply(ev.ChatID, b.String())
	}
}

// Discover handles /discover: a pick from the responder's taste profile.
func (h *DiscoveryHandler) Discover(ev models.CommandEvent) {
	slog.Info("discover command", "responder_id", ev.ResponderID)

	userRatings, err := h.env.State.RatingsForUser(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load user ratings", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	blacklist, err := h.env.State.Blacklist(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load blacklist", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	result, err := selection.DiscoveryPick(h.env.Catalog.All(), userRatings, blacklist, newRand())
	switch err {
	case nil:
	case selection.ErrInsufficientData:
		h.env.reply(ev.ChatID, "🔍 Need more data for personalized recommendations!\n\nRate at least 3 songs first using /recommend or /random, then try /discover again.")
		return
	case selection.ErrAllRated:
		h.env.reply(ev.ChatID, "🎉 You've rated all available songs! Check /toprated for community favorites.")
		return
	default:
		slog.Error("discovery pick failed", "error", err)
		h.env.reply(ev.ChatID, "Sorry, an error occurred. Please try again later.")
		return
	}

	reason := " (exploring new territory for you)"
	if len(result.Reasons) > 0 {
		reason = fmt.Sprintf(" (recommended because %s)", strings.Join(result.Reasons, ", "))
	}
	h.env.presentSong(ev, result.Song, "🔍 Discovered for you"+reason)
}

// Similar handles /similar: a song like the responder's last-shown one.
func (h *DiscoveryHandler) Similar(ev models.CommandEvent) {
	slog.Info("similar command", "responder_id", ev.ResponderID)

	last, found, err := h.env.State.LastShown(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load last shown", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if !found {
		h.env.reply(ev.ChatID, "No recent song to find similar to! Use /recommend, /random, or other commands first.")
		return
	}

	ref, ok := h.env.Catalog.ByID(last.SongID)
	if !ok {
		// The referent left the catalog: a soft reference.
		h.env.reply(ev.ChatID, "Could not find the reference song. Try another command first.")
		return
	}

	blacklist, err := h.env.State.Blacklist(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load blacklist", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	result, err := selection.SimilarPick(h.env.Catalog.All(), ref, blacklist, newRand())
	if err != nil {
		h.env.reply(ev.ChatID, fmt.Sprintf("No similar songs found to %s by %s.", ref.Title, ref.Artist))
		return
	}

	h.env.presentSong(ev, result.Song, fmt.Sprintf("🎭 Similar to %s (%s)", ref.Title, result.Reason))
}
