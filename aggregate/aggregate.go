// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/pahari-music/jukebot/models"
)

// Report shape constants.
const (
	maxListed        = 10  // cap for stats, top-rated and leaderboard output
	topRatedMinVotes = 2   // a top-rated song needs at least two voters
	topRatedMinMean  = 7.0 // and a 7.0+ communal mean
	favoriteCutoff   = 8   // ratings at or above this imply a favorite
)

// All functions here are pure reads over feedback snapshots plus the
// catalog. Rated songs that have left the catalog are soft references and
// are skipped, never surfaced and never fatal.

// Stats computes communal mean and vote count for every rated song still
// in the catalog, sorted by mean then vote count (descending, song ID as
// the stable tail), capped at 10 rows.
func Stats(ratings map[int]map[string]int, songs []models.Song) []models.SongStats {
	byID := songIndex(songs)

	var stats []models.SongStats
	for _, songID := range maps.Keys(ratings) {
		song, ok := byID[songID]
		if !ok {
			continue
		}
		votes := ratings[songID]
		if len(votes) == 0 {
			continue
		}
		stats = append(stats, models.SongStats{
			Song:      song,
			Mean:      meanRating(votes),
			VoteCount: len(votes),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Mean != stats[j].Mean {
			return stats[i].Mean > stats[j].Mean
		}
		if stats[i].VoteCount != stats[j].VoteCount {
			return stats[i].VoteCount > stats[j].VoteCount
		}
		return stats[i].Song.ID < stats[j].Song.ID
	})

	return capList(stats)
}

// TopRated is Stats restricted to songs with at least two voters and a
// communal mean of 7.0 or better, sorted by mean alone.
func TopRated(ratings map[int]map[string]int, songs []models.Song) []models.SongStats {
	byID := songIndex(songs)

	var stats []models.SongStats
	for _, songID := range maps.Keys(ratings) {
		song, ok := byID[songID]
		if !ok {
			continue
		}
		votes := ratings[songID]
		if len(votes) < topRatedMinVotes {
			continue
		}
		mean := meanRating(votes)
		if mean < topRatedMinMean {
			continue
		}
		stats = append(stats, models.SongStats{Song: song, Mean: mean, VoteCount: len(votes)})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Mean != stats[j].Mean {
			return stats[i].Mean > stats[j].Mean
		}
		return stats[i].Song.ID < stats[j].Song.ID
	})

	return capList(stats)
}

// MyRatings lists one responder's ratings, highest first.
func MyRatings(userRatings map[int]int, songs []models.Song) []models.RatingEntry {
	byID := songIndex(songs)

	var entries []models.RatingEntry
	for _, songID := range maps.Keys(userRatings) {
		song, ok := byID[songID]
		if !ok {
			continue
		}
		entries = append(entries, models.RatingEntry{Song: song, Rating: userRatings[songID]})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Song.ID < entries[j].Song.ID
	})
	return entries
}

// MyFavorites merges explicit favorites with songs the responder rated 8+.
// Explicit favorites come back first in append order, annotated with the
// rating when one exists; the remaining high-rated songs follow sorted by
// rating. A song never appears twice.
func MyFavorites(favoriteIDs []int, userRatings map[int]int, songs []models.Song) (explicit, highRated []models.FavoriteEntry) {
	byID := songIndex(songs)

	seen := make(map[int]bool)
	for _, songID := range favoriteIDs {
		song, ok := byID[songID]
		if !ok {
			continue
		}
		seen[songID] = true
		explicit = append(explicit, models.FavoriteEntry{Song: song, Rating: userRatings[songID]})
	}

	for _, songID := range maps.Keys(userRatings) {
		if seen[songID] || userRatings[songID] < favoriteCutoff {
			continue
		}
		song, ok := byID[songID]
		if !ok {
			continue
		}
		highRated = append(highRated, models.FavoriteEntry{Song: song, Rating: userRatings[songID]})
	}

	sort.Slice(highRated, func(i, j int) bool {
		if highRated[i].Rating != highRated[j].Rating {
			return highRated[i].Rating > highRated[j].Rating
		}
		return highRated[i].Song.ID < highRated[j].Song.ID
	})
	return explicit, highRated
}

// BattleLeaderboard attributes one win and one loss per resolved battle
// and aggregates per song. A battle resolves only with a strict vote
// majority: ties contribute nothing to either side. Returns the capped
// leaderboard and the number of resolved battles.
func BattleLeaderboard(battles map[string]models.Battle, songs []models.Song) ([]models.BattleRecord, int) {
	byID := songIndex(songs)

	wins := make(map[int]int)
	losses := make(map[int]int)
	resolved := 0

	for _, battle := range battles {
		votes1, votes2 := 0, 0
		for _, choice := range battle.Votes {
			if choice == 0 {
				votes1++
			} else {
				votes2++
			}
		}
		if votes1+votes2 == 0 || votes1 == votes2 {
			continue
		}

		winner, loser := battle.Song1.ID, battle.Song2.ID
		if votes2 > votes1 {
			winner, loser = loser, winner
		}
		wins[winner]++
		losses[loser]++
		resolved++
	}

	contenders := make(map[int]bool)
	for id := range wins {
		contenders[id] = true
	}
	for id := range losses {
		contenders[id] = true
	}

	var records []models.BattleRecord
	for _, songID := range maps.Keys(contenders) {
		song, ok := byID[songID]
		if !ok {
			continue
		}
		w, l := wins[songID], losses[songID]
		records = append(records, models.BattleRecord{
			Song:    song,
			Wins:    w,
			Losses:  l,
			WinRate: float64(w) / float64(w+l) * 100,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].WinRate != records[j].WinRate {
			return records[i].WinRate > records[j].WinRate
		}
		ti := records[i].Wins + records[i].Losses
		tj := records[j].Wins + records[j].Losses
		if ti != tj {
			return ti > tj
		}
		return records[i].Song.ID < records[j].Song.ID
	})

	return capList(records), resolved
}

// VotesByUser counts how many battles a responder has voted in.
func VotesByUser(battles map[string]models.Battle, responderID string) int {
	n := 0
	for _, battle := range battles {
		if _, ok := battle.Votes[responderID]; ok {
			n++
		}
	}
	return n
}

func songIndex(songs []models.Song) map[int]models.Song {
	byID := make(map[int]models.Song, len(songs))
	for _, song := range songs {
		byID[song.ID] = song
	}
	return byID
}

func meanRating(votes map[string]int) float64 {
	sum := 0
	for _, r := range votes {
		sum += r
	}
	return float64(sum) / float64(len(votes))
}

func capList[T any](list []T) []T {
	if len(list) > maxListed {
		return list[:maxListed]
	}
	return list
}
