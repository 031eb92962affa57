// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pahari-music/jukebot/models"
)

// legacyDocument is the whole-document layout the previous deployment kept
// in a single JSON file. Song IDs under ratings and favorites are strings
// there; blacklist entries are ints.
type legacyDocument struct {
	Ratings   map[string]map[string]int `json:"ratings"`
	Favorites map[string][]string       `json:"favorites"`
	Blacklist map[string][]int          `json:"blacklist"`
	LastShown map[string]legacyLast     `json:"last_shown"`
	Battles   map[string]legacyBattle   `json:"battles"`
}

type legacyLast struct {
	SongID    int    `json:"song_id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Timestamp string `json:"timestamp"`
}

type legacyBattle struct {
	Song1     models.BattleSide `json:"song1"`
	Song2     models.BattleSide `json:"song2"`
	StartTime string            `json:"start_time"`
	Votes     map[string]int    `json:"votes"`
}

// ImportLegacy ingests a whole-document state file into the store. It is a
// no-op when the file is absent, and a malformed file is skipped with a
// log line - the empty store is the recovery shape. Entries that fail
// validation individually (bad song ID, out-of-range vote) are dropped,
// not fatal.
func (s *Store) ImportLegacy(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var doc legacyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Error("legacy state file is malformed, starting from empty state", "path", path, "error", err)
		return nil
	}

	imported := 0
	for songKey, users := range doc.Ratings {
		songID, err := strconv.Atoi(songKey)
		if err != nil {
			continue
		}
		for responderID, rating := range users {
			if err := s.SetRating(songID, responderID, rating); err != nil {
				slog.Warn("skipping legacy rating", "song_id", songID, "error", err)
				continue
			}
			imported++
		}
	}

	for responderID, songKeys := range doc.Favorites {
		for _, key := range songKeys {
			songID, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if _, err := s.AddFavorite(responderID, songID); err != nil {
				slog.Warn("skipping legacy favorite", "song_id", songID, "error", err)
				continue
			}
			imported++
		}
	}

	for responderID, songIDs := range doc.Blacklist {
		for _, songID := range songIDs {
			if _, err := s.AddBlacklist(responderID, songID); err != nil {
				slog.Warn("skipping legacy blacklist entry", "song_id", songID, "error", err)
				continue
			}
			imported++
		}
	}

	for responderID, last := range doc.LastShown {
		shownAt, err := time.Parse(time.RFC3339, last.Timestamp)
		if err != nil {
			shownAt = time.Now()
		}
		ls := models.LastShown{SongID: last.SongID, Title: last.Title, Artist: last.Artist, ShownAt: shownAt}
		if err := s.SetLastShown(responderID, ls); err != nil {
			slog.Warn("skipping legacy last-shown entry", "responder_id", responderID, "error", err)
			continue
		}
		imported++
	}

	for battleID, b := range doc.Battles {
		startedAt, err := time.Parse(time.RFC3339, b.StartTime)
		if err != nil {
			startedAt = time.Now()
		}
		ctx := models.BattleContext{
			BattleID:  battleID,
			Song1:     b.Song1,
			Song2:     b.Song2,
			StartedAt: startedAt,
		}
		for responderID, choice := range b.Votes {
			if err := s.RecordBattleVote(ctx, responderID, choice); err != nil {
				slog.Warn("skipping legacy battle vote", "battle_id", battleID, "error", err)
				continue
			}
			imported++
		}
	}

	slog.Info("imported legacy state", "path", path, "entries", imported)
	return nil
}
