// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pahari-music/jukebot/models"
)

// Store persists all mutable feedback: ratings, favorites, blacklists,
// last-shown markers and battles. Every mutation is a single statement or
// transaction, so concurrent commands touching different keys can never
// overwrite each other's writes.
type Store struct {
	db     *sql.DB
	driver string
}

// New wraps db. driver selects the placeholder dialect: "postgres" queries
// are rebound from ? to $n, anything else passes through (sqlite).
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// q rebinds ? placeholders to $n for the postgres driver.
func (s *Store) q(query string) string {
	if s.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Ratings

// SetRating writes or overwrites the rating for a (song, responder) pair.
func (s *Store) SetRating(songID int, responderID string, rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("rating %d out of range [%d,%d]", rating, models.MinRating, models.MaxRating)
	}

	_, err := s.db.Exec(s.q(`
		INSERT INTO rating (song_id, responder_id, rating, rated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (song_id, responder_id)
		DO UPDATE SET rating = excluded.rating, rated_at = excluded.rated_at
	`), songID, responderID, rating, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// Ratings returns the full communal rating map: songID -> responderID -> rating.
func (s *Store) Ratings() (map[int]map[string]int, error) {
	rows, err := s.db.Query(`SELECT song_id, responder_id, rating FROM rating`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[int]map[string]int)
	for rows.Next() {
		var songID, rating int
		var responderID string
		if err := rows.Scan(&songID, &responderID, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		if ratings[songID] == nil {
			ratings[songID] = make(map[string]int)
		}
		ratings[songID][responderID] = rating
	}
	return ratings, rows.Err()
}

// RatingsForUser returns songID -> rating for one responder.
func (s *Store) RatingsForUser(responderID string) (map[int]int, error) {
	rows, err := s.db.Query(s.q(`SELECT song_id, rating FROM rating WHERE responder_id = ?`), responderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[int]int)
	for rows.Next() {
		var songID, rating int
		if err := rows.Scan(&songID, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings[songID] = rating
	}
	return ratings, rows.Err()
}

// Favorites

// AddFavorite marks a song as an explicit favorite. Reports false if it
// was already there.
func (s *Store) AddFavorite(responderID string, songID int) (bool, error) {
	res, err := s.db.Exec(s.q(`
		INSERT INTO favorite (responder_id, song_id, added_at)
		VALUES (?, ?, ?)
		ON CONFLICT (responder_id, song_id) DO NOTHING
	`), responderID, songID, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite insert: %w", err)
	}
	return n > 0, nil
}

// Favorites returns the responder's explicit favorites in append order.
func (s *Store) Favorites(responderID string) ([]int, error) {
	rows, err := s.db.Query(s.q(`
		SELECT song_id FROM favorite WHERE responder_id = ? ORDER BY added_at, song_id
	`), responderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Blacklist

// AddBlacklist hides a song from every selection mode for this responder.
// Reports false if it was already blacklisted.
func (s *Store) AddBlacklist(responderID string, songID int) (bool, error) {
	res, err := s.db.Exec(s.q(`
		INSERT INTO blacklist (responder_id, song_id, added_at)
		VALUES (?, ?, ?)
		ON CONFLICT (responder_id, song_id) DO NOTHING
	`), responderID, songID, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to add blacklist entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist insert: %w", err)
	}
	return n > 0, nil
}

// RemoveBlacklist reports false if the song was not blacklisted.
func (s *Store) RemoveBlacklist(responderID string, songID int) (bool, error) {
	res, err := s.db.Exec(s.q(`
		DELETE FROM blacklist WHERE responder_id = ? AND song_id = ?
	`), responderID, songID)
	if err != nil {
		return false, fmt.Errorf("failed to remove blacklist entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist delete: %w", err)
	}
	return n > 0, nil
}

// Blacklist returns the responder's blacklisted song IDs as a set.
func (s *Store) Blacklist(responderID string) (map[int]bool, error) {
	ids, err := s.BlacklistIDs(responderID)
	if err != nil {
		return nil, err
	}

	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// BlacklistIDs returns the responder's blacklisted song IDs in append order.
func (s *Store) BlacklistIDs(responderID string) ([]int, error) {
	rows, err := s.db.Query(s.q(`
		SELECT song_id FROM blacklist WHERE responder_id = ? ORDER BY added_at, song_id
	`), responderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blacklist: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan blacklist entry: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Last shown

// SetLastShown overwrites the responder's most recently presented song.
func (s *Store) SetLastShown(responderID string, ls models.LastShown) error {
	_, err := s.db.Exec(s.q(`
		INSERT INTO last_shown (responder_id, song_id, title, artist, shown_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (responder_id)
		DO UPDATE SET song_id = excluded.song_id, title = excluded.title,
		              artist = excluded.artist, shown_at = excluded.shown_at
	`), responderID, ls.SongID, ls.Title, ls.Artist, ls.ShownAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save last shown: %w", err)
	}
	return nil
}

// LastShown returns the responder's referent song, if any.
func (s *Store) LastShown(responderID string) (models.LastShown, bool, error) {
	var ls models.LastShown
	var shownAt int64
	err := s.db.QueryRow(s.q(`
		SELECT song_id, title, artist, shown_at FROM last_shown WHERE responder_id = ?
	`), responderID).Scan(&ls.SongID, &ls.Title, &ls.Artist, &shownAt)
	if err == sql.ErrNoRows {
		return models.LastShown{}, false, nil
	}
	if err != nil {
		return models.LastShown{}, false, fmt.Errorf("failed to query last shown: %w", err)
	}

	ls.ShownAt = time.Unix(shownAt, 0)
	return ls, true, nil
}

// Battles

// RecordBattleVote writes or overwrites a responder's vote. The battle row
// is seeded from the poll context on first vote, inside the same
// transaction as the vote itself.
func (s *Store) RecordBattleVote(ctx models.BattleContext, responderID string, choice int) error {
	if choice != 0 && choice != 1 {
		return fmt.Errorf("battle choice %d out of range", choice)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin battle vote: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.q(`
		INSERT INTO battle (id, song1_id, song1_title, song1_artist,
		                    song2_id, song2_title, song2_artist, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`), ctx.BattleID,
		ctx.Song1.ID, ctx.Song1.Title, ctx.Song1.Artist,
		ctx.Song2.ID, ctx.Song2.Title, ctx.Song2.Artist,
		ctx.StartedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to seed battle: %w", err)
	}

	_, err = tx.Exec(s.q(`
		INSERT INTO battle_vote (battle_id, responder_id, choice, voted_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (battle_id, responder_id)
		DO UPDATE SET choice = excluded.choice, voted_at = excluded.voted_at
	`), ctx.BattleID, responderID, choice, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save battle vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit battle vote: %w", err)
	}
	return nil
}

// Battles returns every battle with its votes attached.
func (s *Store) Battles() (map[string]models.Battle, error) {
	rows, err := s.db.Query(`
		SELECT id, song1_id, song1_title, song1_artist,
		       song2_id, song2_title, song2_artist, started_at
		FROM battle
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query battles: %w", err)
	}
	defer rows.Close()

	battles := make(map[string]models.Battle)
	for rows.Next() {
		var b models.Battle
		var startedAt int64
		if err := rows.Scan(&b.ID,
			&b.Song1.ID, &b.Song1.Title, &b.Song1.Artist,
			&b.Song2.ID, &b.Song2.Title, &b.Song2.Artist,
			&startedAt); err != nil {
			return nil, fmt.Errorf("failed to scan battle: %w", err)
		}
		b.StartedAt = time.Unix(startedAt, 0)
		b.Votes = make(map[string]int)
		battles[b.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	voteRows, err := s.db.Query(`SELECT battle_id, responder_id, choice FROM battle_vote`)
	if err != nil {
		return nil, fmt.Errorf("failed to query battle votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var battleID, responderID string
		var choice int
		if err := voteRows.Scan(&battleID, &responderID, &choice); err != nil {
			return nil, fmt.Errorf("failed to scan battle vote: %w", err)
		}
		if b, ok := battles[battleID]; ok {
			b.Votes[responderID] = choice
		}
	}
	return battles, voteRows.Err()
}

// Empty reports whether the store holds no feedback at all. Used to decide
// whether a legacy import should run.
func (s *Store) Empty() (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT (SELECT COUNT(*) FROM rating)
		     + (SELECT COUNT(*) FROM favorite)
		     + (SELECT COUNT(*) FROM blacklist)
		     + (SELECT COUNT(*) FROM last_shown)
		     + (SELECT COUNT(*) FROM battle)
	`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to count feedback rows: %w", err)
	}
	return n == 0, nil
}
