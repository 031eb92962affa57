// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/pahari-music/jukebot/models"
)

// DiscoveryResult is a personalized pick plus the preference(s) that
// triggered it. Empty Reasons means the pick scored zero - new territory.
type DiscoveryResult struct {
	Song    models.Song
	Reasons []string
}

// Discovery scoring weights: an artist the responder likes counts for more
// than a genre they like.
const (
	genreWeight  = 0.7
	artistWeight = 0.9
)

// shortlistMin is the floor for the sampled shortlist size.
const shortlistMin = 5

// DiscoveryPick recommends an unrated song biased toward the responder's
// demonstrated taste. Preferences accumulate the ratings (>= 7) a
// responder gave per genre and per artist - a sum, not an average, so
// repeated strong signals weigh more. Candidates are scored, ranked, and
// the pick is sampled uniformly from the top max(5, n/3): ranked enough to
// be relevant, sampled enough to stay varied.
func DiscoveryPick(songs []models.Song, userRatings map[int]int, blacklist map[int]bool, rng *rand.Rand) (DiscoveryResult, error) {
	if len(userRatings) < 3 {
		return DiscoveryResult{}, ErrInsufficientData
	}

	byID := make(map[int]models.Song, len(songs))
	for _, song := range songs {
		byID[song.ID] = song
	}

	preferredGenres := make(map[string]float64)
	preferredArtists := make(map[string]float64)
	for songID, rating := range userRatings {
		if rating < 7 {
			continue
		}
		song, ok := byID[songID]
		if !ok {
			// Soft reference: the rated song left the catalog.
			continue
		}
		if g := strings.ToLower(song.Genre); g != "" {
			preferredGenres[g] += float64(rating)
		}
		if a := strings.ToLower(song.Artist); a != "" {
			preferredArtists[a] += float64(rating)
		}
	}

	var candidates []models.Song
	for _, song := range songs {
		if blacklist[song.ID] {
			continue
		}
		if _, rated := userRatings[song.ID]; rated {
			continue
		}
		candidates = append(candidates, song)
	}
	if len(candidates) == 0 {
		return DiscoveryResult{}, ErrAllRated
	}

	type scored struct {
		song  models.Song
		score float64
	}
	scoredSongs := make([]scored, len(candidates))
	for i, song := range candidates {
		score := 0.0
		if v, ok := preferredGenres[strings.ToLower(song.Genre)]; ok {
			score += v * genreWeight
		}
		if v, ok := preferredArtists[strings.ToLower(song.Artist)]; ok {
			score += v * artistWeight
		}
		scoredSongs[i] = scored{song: song, score: score}
	}

	// Rank by score; ties break on song ID so the shortlist is
	// deterministic even though the final pick is sampled.
	sort.Slice(scoredSongs, func(i, j int) bool {
		if scoredSongs[i].score != scoredSongs[j].score {
			return scoredSongs[i].score > scoredSongs[j].score
		}
		return scoredSongs[i].song.ID < scoredSongs[j].song.ID
	})

	top := len(scoredSongs) / 3
	if top < shortlistMin {
		top = shortlistMin
	}
	if top > len(scoredSongs) {
		top = len(scoredSongs)
	}

	pick := scoredSongs[rng.Intn(top)].song

	var reasons []string
	if g := strings.ToLower(pick.Genre); g != "" {
		if _, ok := preferredGenres[g]; ok {
			reasons = append(reasons, "you like "+g)
		}
	}
	if a := strings.ToLower(pick.Artist); a != "" {
		if _, ok := preferredArtists[a]; ok {
			reasons = append(reasons, "you like "+a)
		}
	}

	return DiscoveryResult{Song: pick, Reasons: reasons}, nil
}

// SimilarResult is a similarity pick plus which tier matched.
type SimilarResult struct {
	Song   models.Song
	Reason string // "same artist" or "same genre"
}

// SimilarPick finds a song similar to ref: exact artist matches form the
// top tier, exact genre matches the lower one (both case-insensitive).
// The pick is uniform within the best non-empty tier - every artist match
// is equally eligible before any genre match is considered. The reference
// song itself and blacklisted songs are excluded.
func SimilarPick(songs []models.Song, ref models.Song, blacklist map[int]bool, rng *rand.Rand) (SimilarResult, error) {
	refArtist := strings.ToLower(ref.Artist)
	refGenre := strings.ToLower(ref.Genre)

	var artistTier, genreTier []models.Song
	for _, song := range songs {
		if song.ID == ref.ID || blacklist[song.ID] {
			continue
		}
		switch {
		case strings.ToLower(song.Artist) == refArtist:
			artistTier = append(artistTier, song)
		case strings.ToLower(song.Genre) == refGenre:
			genreTier = append(genreTier, song)
		}
	}

	switch {
	case len(artistTier) > 0:
		return SimilarResult{Song: artistTier[rng.Intn(len(artistTier))], Reason: "same artist"}, nil
	case len(genreTier) > 0:
		return SimilarResult{Song: genreTier[rng.Intn(len(genreTier))], Reason: "same genre"}, nil
	default:
		return SimilarResult{}, ErrNoSimilar
	}
}
