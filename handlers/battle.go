// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/selection"
	"github.com/pahari-music/jukebot/transport"
)

// BattleHandler serves the poll-game commands: /battle and /trivia.
type BattleHandler struct {
	env Env
}

func NewBattleHandler(env Env) *BattleHandler {
	return &BattleHandler{env: env}
}

// Battle handles /battle: pit two random songs against each other in a
// head-to-head poll.
func (h *BattleHandler) Battle(ev models.CommandEvent) {
	slog.Info("battle command", "responder_id", ev.ResponderID, "chat_id", ev.ChatID)

	if h.env.Catalog.Len() < 2 {
		h.env.reply(ev.ChatID, "Need at least 2 songs for battles!")
		return
	}

	cands, ok := h.env.candidates(ev)
	if !ok {
		return
	}

	song1, song2, err := selection.BattlePair(cands, newRand())
	if err != nil {
		h.env.reply(ev.ChatID, "Not enough songs available for battle (some may be blacklisted).")
		return
	}

	startedAt := time.Now()
	battleID := fmt.Sprintf("%d_%d", ev.ChatID, startedAt.Unix())

	h.env.reply(ev.ChatID, fmt.Sprintf(
		"🥊 SONG BATTLE!\n\nFighter 1: %s — %s\n🆚\nFighter 2: %s — %s\n\nVote for your favorite!",
		song1.Title, song1.Artist, song2.Title, song2.Artist))

	options := []string{
		fmt.Sprintf("🎵 %s — %s", song1.Title, song1.Artist),
		fmt.Sprintf("🎵 %s — %s", song2.Title, song2.Artist),
	}
	pollID, err := h.env.Messenger.OpenPoll(ev.ChatID, "🥊 SONG BATTLE! Which song is better?", options, transport.PollOptions{})
	if err != nil {
		slog.Error("failed to open battle poll", "chat_id", ev.ChatID, "error", err)
		return
	}

	h.env.Registry.Register(pollID, models.BattleContext{
		BattleID:  battleID,
		Song1:     models.BattleSide{ID: song1.ID, Title: song1.Title, Artist: song1.Artist},
		Song2:     models.BattleSide{ID: song2.ID, Title: song2.Title, Artist: song2.Artist},
		ChatID:    ev.ChatID,
		StartedAt: startedAt,
	})
	slog.Info("battle poll opened", "poll_id", pollID, "battle_id", battleID,
		"song1_id", song1.ID, "song2_id", song2.ID)
}

// Trivia handles /trivia: a quiz poll about a random song. Trivia answers
// carry no state, so the poll is deliberately left out of the registry and
// its answer events drop.
func (h *BattleHandler) Trivia(ev models.CommandEvent) {
	slog.Info("trivia command", "responder_id", ev.ResponderID)

	trivia, err := selection.TriviaQuestion(h.env.Catalog.All(), newRand())
	if err != nil {
		h.env.reply(ev.ChatID, "Need at least 4 songs for trivia!")
		return
	}

	pollID, err := h.env.Messenger.OpenPoll(ev.ChatID, trivia.Question, trivia.Options, transport.PollOptions{
		Quiz:         true,
		CorrectIndex: trivia.CorrectIndex,
		Explanation:  trivia.Explanation,
	})
	if err != nil {
		slog.Error("failed to open trivia poll", "chat_id", ev.ChatID, "error", err)
		h.env.reply(ev.ChatID, "Sorry, an error occurred. Please try again later.")
		return
	}
	slog.Info("trivia poll opened", "poll_id", pollID)
}
