// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"
	"unicode"

	"github.com/pahari-music/jukebot/catalog"
	"github.com/pahari-music/jukebot/cliparse"
	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/selection"
	"github.com/pahari-music/jukebot/state"
	"github.com/pahari-music/jukebot/transport"
)

// ratingPollOptions are the ten answers of a rating poll; the chosen
// 0-based index + 1 is the rating.
var ratingPollOptions = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

const msgStoreUnavailable = "Sorry, your preferences are temporarily unavailable. Please try again later."

// Env bundles the dependencies every command handler works against.
type Env struct {
	Catalog   *catalog.Store
	State     *state.Store
	Registry  *registry.Registry
	Messenger transport.Messenger
	Quotes    []string
	Cfg       cliparse.Config
}

// newRand returns a private PRNG seeded from the global locked source, so
// concurrently running handlers never share rand state.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}

// reply delivers a message, logging (not propagating) delivery failures.
func (e Env) reply(chatID int64, text string) {
	if err := e.Messenger.SendMessage(chatID, text); err != nil {
		slog.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

// candidates loads the responder's blacklist and filters the catalog. A
// false return means the failure was already reported to the chat.
func (e Env) candidates(ev models.CommandEvent) ([]models.Song, bool) {
	blacklist, err := e.State.Blacklist(ev.ResponderID)
	if err != nil {
		slog.Error("failed to load blacklist", "responder_id", ev.ResponderID, "error", err)
		e.reply(ev.ChatID, msgStoreUnavailable)
		return nil, false
	}

	cands, err := selection.Candidates(e.Catalog.All(), blacklist)
	if err != nil {
		switch err {
		case selection.ErrNoSongs:
			e.reply(ev.ChatID, "No songs available yet.")
		case selection.ErrAllBlacklisted:
			e.reply(ev.ChatID, "All songs are in your blacklist! Use /blacklist to manage your preferences.")
		default:
			e.reply(ev.ChatID, "Sorry, an error occurred. Please try again later.")
		}
		return nil, false
	}
	return cands, true
}

// presentSong is the common tail of every recommendation: remember the
// song as the responder's referent, deliver it, then open a rating poll
// correlated back to it. A failed last-shown write is logged but does not
// stop the recommendation.
func (e Env) presentSong(ev models.CommandEvent, song models.Song, prefix string) {
	e.trackLastShown(ev.ResponderID, song)
	e.reply(ev.ChatID, formatSong(song, prefix))
	e.openRatingPoll(ev.ChatID, song)
}

func (e Env) trackLastShown(responderID string, song models.Song) {
	ls := models.LastShown{
		SongID:  song.ID,
		Title:   song.Title,
		Artist:  song.Artist,
		ShownAt: time.Now(),
	}
	if err := e.State.SetLastShown(responderID, ls); err != nil {
		slog.Error("failed to track last shown", "responder_id", responderID, "song_id", song.ID, "error", err)
	}
}

// openRatingPoll opens a 1-10 poll and registers its rating context.
func (e Env) openRatingPoll(chatID int64, song models.Song) {
	question := fmt.Sprintf("Rate: %s", song.Title)
	pollID, err := e.Messenger.OpenPoll(chatID, question, ratingPollOptions, transport.PollOptions{})
	if err != nil {
		slog.Error("failed to open rating poll", "chat_id", chatID, "song_id", song.ID, "error", err)
		return
	}

	e.Registry.Register(pollID, models.RatingContext{
		SongID:    song.ID,
		SongTitle: song.Title,
		ChatID:    chatID,
	})
	slog.Info("rating poll opened", "poll_id", pollID, "song_id", song.ID)
}

// formatSong renders the standard song card.
func formatSong(song models.Song, prefix string) string {
	genre := song.Genre
	if genre == "" {
		genre = "Unknown"
	}
	year := "Unknown"
	if song.Year != 0 {
		year = strconv.Itoa(song.Year)
	}

	msg := fmt.Sprintf("%s: %s — %s\n🎵 Genre: %s | Year: %s", prefix, song.Title, song.Artist, genre, year)
	if song.URL != "" {
		msg += "\n" + song.URL
	}
	return msg
}

// titleCase upper-cases the first rune, for genre prefixes like "Rock pick".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
