// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/pahari-music/jukebot/catalog"
	"github.com/pahari-music/jukebot/models"
)

// AdminHandler serves the catalog management commands: /add, /remove,
// /reload. All of them are gated on the admin allowlist.
type AdminHandler struct {
	env Env
}

func NewAdminHandler(env Env) *AdminHandler {
	return &AdminHandler{env: env}
}

func (h *AdminHandler) isAdmin(responderID string) bool {
	for _, id := range h.env.Cfg.AdminIDs {
		if id == responderID {
			return true
		}
	}
	return false
}

func (h *AdminHandler) requireAdmin(ev models.CommandEvent) bool {
	if h.isAdmin(ev.ResponderID) {
		return true
	}
	slog.Warn("admin command denied", "command", ev.Name, "responder_id", ev.ResponderID)
	h.env.reply(ev.ChatID, "❌ Admin access required.")
	return false
}

// Add handles /add [title] [artist] [url] [genre] [year].
func (h *AdminHandler) Add(ev models.CommandEvent) {
	if !h.requireAdmin(ev) {
		return
	}

	if len(ev.Args) < 2 {
		h.env.reply(ev.ChatID, "Usage: /add [title] [artist] [url] [genre] [year]")
		return
	}

	title, artist := ev.Args[0], ev.Args[1]
	url, genre := "", "unknown"
	year := 0
	if len(ev.Args) > 2 {
		url = ev.Args[2]
	}
	if len(ev.Args) > 3 {
		genre = ev.Args[3]
	}
	if len(ev.Args) > 4 {
		if y, err := strconv.Atoi(ev.Args[4]); err == nil {
			year = y
		}
	}

	song, err := h.env.Catalog.Add(title, artist, url, genre, year)
	if err != nil {
		slog.Error("failed to add song", "title", title, "error", err)
		h.env.reply(ev.ChatID, "Failed to add song. Please try again later.")
		return
	}

	slog.Info("song added", "song_id", song.ID, "title", song.Title, "by", ev.ResponderID)
	h.env.reply(ev.ChatID, fmt.Sprintf("✅ Added song %d: %s — %s", song.ID, song.Title, song.Artist))
}

// Remove handles /remove [song_id].
func (h *AdminHandler) Remove(ev models.CommandEvent) {
	if !h.requireAdmin(ev) {
		return
	}

	if len(ev.Args) == 0 {
		h.env.reply(ev.ChatID, "Usage: /remove [song_id]")
		return
	}
	songID, err := strconv.Atoi(ev.Args[0])
	if err != nil {
		h.env.reply(ev.ChatID, fmt.Sprintf("Invalid song ID: %s", ev.Args[0]))
		return
	}

	song, err := h.env.Catalog.Remove(songID)
	if err == catalog.ErrNotFound {
		h.env.reply(ev.ChatID, fmt.Sprintf("Song with ID %d not found.", songID))
		return
	}
	if err != nil {
		slog.Error("failed to remove song", "song_id", songID, "error", err)
		h.env.reply(ev.ChatID, "Failed to remove song. Please try again later.")
		return
	}

	slog.Info("song removed", "song_id", songID, "by", ev.ResponderID)
	h.env.reply(ev.ChatID, fmt.Sprintf("✅ Removed: %s — %s", song.Title, song.Artist))
}

// Reload handles /reload: re-read the catalog file from disk.
func (h *AdminHandler) Reload(ev models.CommandEvent) {
	if !h.requireAdmin(ev) {
		return
	}

	n, err := h.env.Catalog.Reload()
	if err != nil {
		slog.Error("failed to reload catalog", "error", err)
		h.env.reply(ev.ChatID, "Failed to reload the song database. Check the catalog file.")
		return
	}

	slog.Info("catalog reloaded", "songs", n, "by", ev.ResponderID)
	h.env.reply(ev.ChatID, fmt.Sprintf("✅ Reloaded %s songs from database.", humanize.Comma(int64(n))))
}
