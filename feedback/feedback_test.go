// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"testing"
	"time"

	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/state"
	"github.com/pahari-music/jukebot/testutil"
)

func setupProcessor(t *testing.T) (*Processor, *registry.Registry, *state.Store) {
	t.Helper()

	st := testutil.NewTestState(t)
	reg := registry.New()
	return NewProcessor(st, reg), reg, st
}

func TestPollAnswerCapturesRating(t *testing.T) {
	p, reg, st := setupProcessor(t)

	reg.Register("poll-1", models.RatingContext{SongID: 7, SongTitle: "T", ChatID: 100})

	// Option index 7 means rating 8.
	p.HandlePollAnswer(models.PollAnswerEvent{
		PollID: "poll-1", ResponderID: "u1", OptionIndexes: []int{7},
	})

	ratings, err := st.Ratings()
	if err != nil {
		t.Fatalf("Ratings failed: %v", err)
	}
	if ratings[7]["u1"] != 8 {
		t.Errorf("Expected rating 8, got %v", ratings[7])
	}
}

func TestPollAnswerOverwritesRating(t *testing.T) {
	p, reg, st := setupProcessor(t)
	reg.Register("poll-1", models.RatingContext{SongID: 7, ChatID: 100})

	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "poll-1", ResponderID: "u1", OptionIndexes: []int{2}})
	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "poll-1", ResponderID: "u1", OptionIndexes: []int{9}})

	ratings, _ := st.Ratings()
	if ratings[7]["u1"] != 10 {
		t.Errorf("Expected changed vote to land at 10, got %v", ratings[7])
	}
	if len(ratings[7]) != 1 {
		t.Errorf("Expected one row per (song, responder), got %v", ratings[7])
	}
}

func TestPollAnswerCapturesBattleVote(t *testing.T) {
	p, reg, st := setupProcessor(t)

	ctx := models.BattleContext{
		BattleID:  "100_1700000000",
		Song1:     models.BattleSide{ID: 1, Title: "A", Artist: "X"},
		Song2:     models.BattleSide{ID: 2, Title: "B", Artist: "Y"},
		ChatID:    100,
		StartedAt: time.Now(),
	}
	reg.Register("poll-2", ctx)

	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "poll-2", ResponderID: "u1", OptionIndexes: []int{1}})

	battles, err := st.Battles()
	if err != nil {
		t.Fatalf("Battles failed: %v", err)
	}
	b, ok := battles["100_1700000000"]
	if !ok {
		t.Fatal("Expected battle seeded by first vote")
	}
	if b.Votes["u1"] != 1 {
		t.Errorf("Expected vote for side 1, got %v", b.Votes)
	}
}

func TestPollAnswerUnknownPollDrops(t *testing.T) {
	p, _, st := setupProcessor(t)

	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "ghost", ResponderID: "u1", OptionIndexes: []int{5}})

	ratings, _ := st.Ratings()
	if len(ratings) != 0 {
		t.Errorf("Expected unknown poll to write nothing, got %v", ratings)
	}
}

func TestPollAnswerRetractionIgnored(t *testing.T) {
	p, reg, st := setupProcessor(t)
	reg.Register("poll-1", models.RatingContext{SongID: 7, ChatID: 100})

	// Empty option list is a retraction; the prior rating stands.
	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "poll-1", ResponderID: "u1", OptionIndexes: []int{4}})
	p.HandlePollAnswer(models.PollAnswerEvent{PollID: "poll-1", ResponderID: "u1", OptionIndexes: nil})

	ratings, _ := st.Ratings()
	if ratings[7]["u1"] != 5 {
		t.Errorf("Expected retraction to leave rating 5, got %v", ratings[7])
	}
}
