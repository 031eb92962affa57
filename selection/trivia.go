// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"fmt"
	"math/rand"

	"github.com/pahari-music/jukebot/models"
)

// triviaOptionCount is the number of answers in a quiz poll.
const triviaOptionCount = 4

// TriviaQuestion builds a four-option quiz about one song's artist, genre
// or year. Trivia is communal rather than personalized, so it runs over
// the unfiltered catalog and ignores blacklists.
func TriviaQuestion(songs []models.Song, rng *rand.Rand) (models.Trivia, error) {
	if len(songs) < triviaOptionCount {
		return models.Trivia{}, ErrInsufficientCandidates
	}

	correct := songs[rng.Intn(len(songs))]

	var wrong []models.Song
	for _, song := range songs {
		if song.ID != correct.ID {
			wrong = append(wrong, song)
		}
	}
	rng.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })

	choices := append([]models.Song{correct}, wrong[:triviaOptionCount-1]...)
	rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	correctIndex := 0
	options := make([]string, len(choices))
	for i, song := range choices {
		options[i] = song.Title
		if song.ID == correct.ID {
			correctIndex = i
		}
	}

	genre := correct.Genre
	if genre == "" {
		genre = "unknown"
	}
	year := "unknown"
	if correct.Year != 0 {
		year = fmt.Sprintf("%d", correct.Year)
	}

	questions := []string{
		fmt.Sprintf("Which song is by %s?", correct.Artist),
		fmt.Sprintf("Which song is from the %s genre?", genre),
		fmt.Sprintf("Which song was released in %s?", year),
	}

	return models.Trivia{
		Question:     questions[rng.Intn(len(questions))],
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  fmt.Sprintf("Correct! %s by %s (%s, %s)", correct.Title, correct.Artist, genre, year),
	}, nil
}
