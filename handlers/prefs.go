// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pahari-music/jukebot/aggregate"
	"github.com/pahari-music/jukebot/models"
)

// PrefsHandler serves the per-responder preference commands: /favorite,
// /myfavorites, /blacklist, /myratings.
type PrefsHandler struct {
	env Env
}

func NewPrefsHandler(env Env) *PrefsHandler {
	return &PrefsHandler{env: env}
}

// Favorite handles /favorite: mark the responder's last-shown song as an
// explicit favorite.
func (h *PrefsHandler) Favorite(ev models.CommandEvent) {
	slog.Info("favorite command", "responder_id", ev.ResponderID)

	last, found, err := h.env.State.LastShown(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load last shown", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if !found {
		h.env.reply(ev.ChatID, "No recent song to favorite! Use /recommend, /random, or other commands first.")
		return
	}

	added, err := h.env.State.AddFavorite(ev.ResponderID, last.SongID)
	if err != nil {
		slog.Error("failed to add favorite", "responder_id", ev.ResponderID, "song_id", last.SongID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	if added {
		h.env.reply(ev.ChatID, fmt.Sprintf("❤️ Added to favorites: %s — %s", last.Title, last.Artist))
	} else {
		h.env.reply(ev.ChatID, fmt.Sprintf("💖 Already in favorites: %s — %s", last.Title, last.Artist))
	}
}

// MyFavorites handles /myfavorites: explicit favorites plus songs the
// responder rated 8 or higher.
func (h *PrefsHandler) MyFavorites(ev models.CommandEvent) {
	slog.Info("myfavorites command", "responder_id", ev.ResponderID)

	favoriteIDs, err := h.env.State.Favorites(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load favorites", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	userRatings, err := h.env.State.RatingsForUser(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load user ratings", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	explicit, highRated := aggregate.MyFavorites(favoriteIDs, userRatings, h.env.Catalog.All())
	if len(explicit) == 0 && len(highRated) == 0 {
		h.env.reply(ev.ChatID, "No favorites yet! Use /favorite to mark songs or rate them 8+ ⭐")
		return
	}

	var b strings.Builder
	b.WriteString("🎵 Your Favorites:\n")
	if len(explicit) > 0 {
		b.WriteString("\n💖 Explicitly Favorited:\n")
		for _, entry := range explicit {
			fmt.Fprintf(&b, "• %s — %s", entry.Song.Title, entry.Song.Artist)
			if entry.Rating != 0 {
				fmt.Fprintf(&b, " (%d/10)", entry.Rating)
			}
			b.WriteString("\n")
		}
	}
	if len(highRated) > 0 {
		b.WriteString("\n⭐ Highly Rated (8+):\n")
		for _, entry := range highRated {
			fmt.Fprintf(&b, "• %s — %s (%d/10)\n", entry.Song.Title, entry.Song.Artist, entry.Rating)
		}
	}
	h.env.reply(ev.ChatID, b.String())
}

// Blacklist handles /blacklist and its add/remove subcommands.
func (h *PrefsHandler) Blacklist(ev models.CommandEvent) {
	slog.Info("blacklist command", "responder_id", ev.ResponderID, "args", ev.Args)

	if len(ev.Args) == 0 {
		h.showBlacklist(ev)
		return
	}

	switch strings.ToLower(ev.Args[0]) {
	case "add":
		h.blacklistAdd(ev)
	case "remove":
		h.blacklistRemove(ev)
	default:
		h.env.reply(ev.ChatID, "Usage: /blacklist [add|remove] [song_id]\nUse /blacklist to see your current blacklist.")
	}
}

func (h *PrefsHandler) showBlacklist(ev models.CommandEvent) {
	ids, err := h.env.State.BlacklistIDs(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load blacklist", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if len(ids) == 0 {
		h.env.reply(ev.ChatID, "Your blacklist is empty!\n\nUsage:\n/blacklist add - blacklist the last shown song\n/blacklist remove [song_id] - remove a song from your blacklist")
		return
	}

	var b strings.Builder
	b.WriteString("🚫 Your Blacklist:\n")
	for _, id := range ids {
		song, ok := h.env.Catalog.ByID(id)
		if !ok {
			// Song left the catalog; keep the row visible so it can be removed.
			fmt.Fprintf(&b, "• [%d] (no longer in catalog)\n", id)
			continue
		}
		fmt.Fprintf(&b, "• [%d] %s — %s\n", song.ID, song.Title, song.Artist)
	}
	b.WriteString("\nUse /blacklist remove [song_id] to remove entries.")
	h.env.reply(ev.ChatID, b.String())
}

func (h *PrefsHandler) blacklistAdd(ev models.CommandEvent) {
	last, found, err := h.env.State.LastShown(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load last shown", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}
	if !found {
		h.env.reply(ev.ChatID, "No recent song to blacklist! Use /recommend, /random, or other commands first.")
		return
	}

	added, err := h.env.State.AddBlacklist(ev.ResponderID, last.SongID)
	if err != nil {
		slog.Error("failed to add blacklist entry", "responder_id", ev.ResponderID, "song_id", last.SongID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	if added {
		h.env.reply(ev.ChatID, fmt.Sprintf("🚫 Added to blacklist: %s — %s\nThis song won't be recommended to you anymore.", last.Title, last.Artist))
	} else {
		h.env.reply(ev.ChatID, fmt.Sprintf("Already in your blacklist: %s — %s", last.Title, last.Artist))
	}
}

func (h *PrefsHandler) blacklistRemove(ev models.CommandEvent) {
	if len(ev.Args) < 2 {
		h.env.reply(ev.ChatID, "Usage: /blacklist remove [song_id]")
		return
	}
	songID, err := strconv.Atoi(ev.Args[1])
	if err != nil {
		h.env.reply(ev.ChatID, fmt.Sprintf("Invalid song ID: %s", ev.Args[1]))
		return
	}

	removed, err := h.env.State.RemoveBlacklist(ev.ResponderID, songID)
	if err != nil {
		slog.Error("failed to remove blacklist entry", "responder_id", ev.ResponderID, "song_id", songID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	if !removed {
		h.env.reply(ev.ChatID, fmt.Sprintf("Song %d is not in your blacklist.", songID))
		return
	}
	if song, ok := h.env.Catalog.ByID(songID); ok {
		h.env.reply(ev.ChatID, fmt.Sprintf("✅ Removed from blacklist: %s — %s", song.Title, song.Artist))
	} else {
		h.env.reply(ev.ChatID, fmt.Sprintf("✅ Removed song %d from your blacklist.", songID))
	}
}

// MyRatings handles /myratings: the responder's own ratings, highest first.
func (h *PrefsHandler) MyRatings(ev models.CommandEvent) {
	slog.Info("myratings command", "responder_id", ev.ResponderID)

	userRatings, err := h.env.State.RatingsForUser(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load user ratings", "responder_id", ev.ResponderID, "error", err)
		h.env.reply(ev.ChatID, msgStoreUnavailable)
		return
	}

	entries := aggregate.MyRatings(userRatings, h.env.Catalog.All())
	if len(entries) == 0 {
		h.env.reply(ev.ChatID, "You haven't rated any songs yet! Use /recommend or /random to discover music.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎭 Your Ratings (%d songs):\n\n", len(entries))
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s %d/10 - %s — %s\n",
			strings.Repeat("⭐", entry.Rating), entry.Rating, entry.Song.Title, entry.Song.Artist)
	}
	h.env.reply(ev.ChatID, b.String())
}
