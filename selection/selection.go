// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/pahari-music/jukebot/models"
)

// Selection failure taxonomy. Handlers translate these into plain-language
// replies; none are fatal.
var (
	ErrNoSongs                = errors.New("no songs available")
	ErrAllBlacklisted         = errors.New("all songs blacklisted")
	ErrNoMatch                = errors.New("no matching songs")
	ErrInsufficientData       = errors.New("not enough ratings for discovery")
	ErrAllRated               = errors.New("all candidate songs already rated")
	ErrNoReference            = errors.New("no reference song")
	ErrNoSimilar              = errors.New("no similar songs")
	ErrInsufficientCandidates = errors.New("not enough candidate songs")
)

// dailyEpoch anchors the deterministic daily pick.
var dailyEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Filter removes blacklisted songs, preserving catalog order.
func Filter(songs []models.Song, blacklist map[int]bool) []models.Song {
	if len(blacklist) == 0 {
		return songs
	}

	out := make([]models.Song, 0, len(songs))
	for _, song := range songs {
		if !blacklist[song.ID] {
			out = append(out, song)
		}
	}
	return out
}

// Candidates is the common entry for personalized modes: the catalog minus
// the responder's blacklist, with the two empty cases distinguished so the
// reply can say which one happened.
func Candidates(songs []models.Song, blacklist map[int]bool) ([]models.Song, error) {
	if len(songs) == 0 {
		return nil, ErrNoSongs
	}

	filtered := Filter(songs, blacklist)
	if len(filtered) == 0 {
		return nil, ErrAllBlacklisted
	}
	return filtered, nil
}

// DailyPick returns the day's deterministic pick: calendar days since
// 2024-01-01 (local date), floor modulo the candidate count. The same day
// and candidate set always yield the same song.
func DailyPick(candidates []models.Song, today time.Time) (models.Song, error) {
	if len(candidates) == 0 {
		return models.Song{}, ErrNoSongs
	}

	idx := floorMod(daysSinceEpoch(today), len(candidates))
	return candidates[idx], nil
}

// daysSinceEpoch counts calendar days from the epoch to t's local date.
// Both dates are rebuilt in UTC so DST transitions cannot skew the count.
func daysSinceEpoch(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(dailyEpoch).Hours() / 24)
}

// floorMod is the non-negative (Euclidean) modulus, so a clock set before
// the epoch still indexes into the slice.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// RandomPick returns a uniformly random candidate.
func RandomPick(candidates []models.Song, rng *rand.Rand) (models.Song, error) {
	if len(candidates) == 0 {
		return models.Song{}, ErrNoSongs
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// GenreFilter picks uniformly among candidates whose genre matches exactly
// (case-insensitive).
func GenreFilter(candidates []models.Song, genre string, rng *rand.Rand) (models.Song, error) {
	want := strings.ToLower(genre)

	var matches []models.Song
	for _, song := range candidates {
		if strings.ToLower(song.Genre) == want {
			matches = append(matches, song)
		}
	}
	if len(matches) == 0 {
		return models.Song{}, ErrNoMatch
	}
	return matches[rng.Intn(len(matches))], nil
}

// ArtistSearch matches candidates whose artist contains query
// (case-insensitive substring). A single match is returned directly;
// multiple matches yield a uniform pick plus the match count so the caller
// can report it.
func ArtistSearch(candidates []models.Song, query string, rng *rand.Rand) (models.Song, int, error) {
	want := strings.ToLower(query)

	var matches []models.Song
	for _, song := range candidates {
		if strings.Contains(strings.ToLower(song.Artist), want) {
			matches = append(matches, song)
		}
	}

	switch len(matches) {
	case 0:
		return models.Song{}, 0, ErrNoMatch
	case 1:
		return matches[0], 1, nil
	default:
		return matches[rng.Intn(len(matches))], len(matches), nil
	}
}

// TitleSearch returns every song whose title contains keyword
// (case-insensitive substring). Search is informational, so it runs over
// the unfiltered catalog - the blacklist does not apply.
func TitleSearch(songs []models.Song, keyword string) []models.Song {
	want := strings.ToLower(keyword)

	var matches []models.Song
	for _, song := range songs {
		if strings.Contains(strings.ToLower(song.Title), want) {
			matches = append(matches, song)
		}
	}
	return matches
}

// BattlePair draws two distinct candidates uniformly without replacement.
func BattlePair(candidates []models.Song, rng *rand.Rand) (models.Song, models.Song, error) {
	if len(candidates) < 2 {
		return models.Song{}, models.Song{}, ErrInsufficientCandidates
	}

	i := rng.Intn(len(candidates))
	j := rng.Intn(len(candidates) - 1)
	if j >= i {
		j++
	}
	return candidates[i], candidates[j], nil
}
