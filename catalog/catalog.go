// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pahari-music/jukebot/models"
)

var ErrNotFound = errors.New("song not found")

// Store holds the song catalog, backed by a JSON file. Reads are served
// from memory; Add/Remove rewrite the whole file (temp-write-then-rename)
// before mutating the in-memory copy.
type Store struct {
	path  string
	mu    sync.RWMutex
	songs []models.Song
}

// Open loads the catalog from path. A missing or malformed file yields an
// empty catalog: the bot stays up and admins can /add songs into it.
func Open(path string) *Store {
	s := &Store{path: path}
	songs, err := readSongs(path)
	if err != nil {
		slog.Error("failed to load catalog, starting empty", "path", path, "error", err)
		return s
	}
	s.songs = songs
	slog.Info("catalog loaded", "path", path, "songs", len(songs))
	return s
}

func readSongs(path string) ([]models.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var songs []models.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	return songs, nil
}

// All returns a copy of the catalog in stored order.
func (s *Store) All() []models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Song, len(s.songs))
	copy(out, s.songs)
	return out
}

// Len returns the number of songs in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.songs)
}

// ByID looks a song up by ID.
func (s *Store) ByID(id int) (models.Song, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, song := range s.songs {
		if song.ID == id {
			return song, true
		}
	}
	return models.Song{}, false
}

// Genres returns the sorted distinct lower-cased genres in the catalog.
func (s *Store) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, song := range s.songs {
		g := strings.ToLower(song.Genre)
		if g == "" {
			g = "unknown"
		}
		seen[g] = true
	}

	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

// Add appends a song with the next free ID and persists the catalog.
func (s *Store) Add(title, artist, url, genre string, year int) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := 0
	for _, song := range s.songs {
		if song.ID > nextID {
			nextID = song.ID
		}
	}

	song := models.Song{
		ID:     nextID + 1,
		Title:  title,
		Artist: artist,
		Genre:  genre,
		Year:   year,
		URL:    url,
	}

	updated := append(append([]models.Song{}, s.songs...), song)
	if err := s.write(updated); err != nil {
		return models.Song{}, err
	}
	s.songs = updated
	return song, nil
}

// Remove deletes a song by ID and persists the catalog. Feedback rows
// referencing the ID become soft references and are skipped by consumers.
func (s *Store) Remove(id int) (models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, song := range s.songs {
		if song.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Song{}, ErrNotFound
	}

	removed := s.songs[idx]
	updated := append(append([]models.Song{}, s.songs[:idx]...), s.songs[idx+1:]...)
	if err := s.write(updated); err != nil {
		return models.Song{}, err
	}
	s.songs = updated
	return removed, nil
}

// Reload re-reads the catalog from disk and returns the new song count.
func (s *Store) Reload() (int, error) {
	songs, err := readSongs(s.path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.songs = songs
	s.mu.Unlock()
	return len(songs), nil
}

// write persists songs atomically from the reader's perspective: the new
// list lands in a temp file first and replaces the old one via rename.
func (s *Store) write(songs []models.Song) error {
	data, err := json.MarshalIndent(songs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace catalog: %w", err)
	}
	return nil
}
