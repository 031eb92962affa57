// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"
	"testing"

	"github.com/pahari-music/jukebot/feedback"
	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/testutil"
)

// setupEnv builds a full handler environment over an in-memory state
// store, a temp-file catalog and a recording messenger.
func setupEnv(t *testing.T, songs []models.Song) (Env, *testutil.FakeMessenger) {
	t.Helper()

	fake := &testutil.FakeMessenger{}
	env := Env{
		Catalog:   testutil.TempCatalog(t, songs),
		State:     testutil.NewTestState(t),
		Registry:  registry.New(),
		Messenger: fake,
		Quotes:    []string{"Music is life."},
		Cfg:       testutil.GetTestConfig(),
	}
	return env, fake
}

func cmd(name string, args ...string) models.CommandEvent {
	return models.CommandEvent{Name: name, Args: args, ChatID: 100, ResponderID: "u1"}
}

func TestRecommendSendsCardAndOpensPoll(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	NewDiscoveryHandler(env).Recommend(cmd("recommend"))

	msg := fake.LastMessage(t)
	if !strings.HasPrefix(msg, "Today's pick: ") {
		t.Errorf("Expected daily pick card, got %q", msg)
	}

	poll := fake.LastPoll(t)
	if !strings.HasPrefix(poll.Question, "Rate: ") {
		t.Errorf("Expected rating poll question, got %q", poll.Question)
	}
	if len(poll.Options) != 10 {
		t.Errorf("Expected 10 rating options, got %d", len(poll.Options))
	}

	// The poll context must be registered for the feedback loop.
	ctx, ok := env.Registry.Resolve(poll.PollID)
	if !ok {
		t.Fatal("Expected rating context registered under poll ID")
	}
	if _, isRating := ctx.(models.RatingContext); !isRating {
		t.Errorf("Expected RatingContext, got %T", ctx)
	}

	// The song is now the responder's referent.
	if _, found, err := env.State.LastShown("u1"); err != nil || !found {
		t.Errorf("Expected last shown tracked, found=%v err=%v", found, err)
	}
}

func TestRecommendDeterministicWithinDay(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())
	h := NewDiscoveryHandler(env)

	h.Recommend(cmd("recommend"))
	first := fake.LastMessage(t)
	h.Recommend(cmd("recommend"))
	second := fake.LastMessage(t)

	if first != second {
		t.Errorf("Daily pick changed within the same day:\n%q\n%q", first, second)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	env, fake := setupEnv(t, nil)

	NewDiscoveryHandler(env).Recommend(cmd("recommend"))

	if msg := fake.LastMessage(t); msg != "No songs available yet." {
		t.Errorf("Expected empty-catalog reply, got %q", msg)
	}
	if len(fake.Polls) != 0 {
		t.Error("Expected no poll for an empty catalog")
	}
}

func TestRandomAllBlacklisted(t *testing.T) {
	songs := testutil.TestSongs()
	env, fake := setupEnv(t, songs)

	for _, s := range songs {
		if _, err := env.State.AddBlacklist("u1", s.ID); err != nil {
			t.Fatalf("AddBlacklist failed: %v", err)
		}
	}

	NewDiscoveryHandler(env).Random(cmd("random"))

	msg := fake.LastMessage(t)
	if !strings.Contains(msg, "blacklist") {
		t.Errorf("Expected all-blacklisted reply, got %q", msg)
	}
}

func TestRatingLoopEndToEnd(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	NewDiscoveryHandler(env).Random(cmd("random"))
	poll := fake.LastPoll(t)

	// Answer the rating poll: option index 8 is a 9/10.
	processor := feedback.NewProcessor(env.State, env.Registry)
	processor.HandlePollAnswer(models.PollAnswerEvent{
		PollID: poll.PollID, ResponderID: "u1", OptionIndexes: []int{8},
	})

	ratings, err := env.State.RatingsForUser("u1")
	if err != nil {
		t.Fatalf("RatingsForUser failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("Expected one rating, got %v", ratings)
	}
	for _, r := range ratings {
		if r != 9 {
			t.Errorf("Expected rating 9, got %d", r)
		}
	}
}

func TestFormatSong(t *testing.T) {
	song := models.Song{ID: 5, Title: "Nira Jaau", Artist: "Bipul Chettri", Genre: "indie", Year: 2016, URL: "https://example.com/x"}

	got := formatSong(song, "Random pick")
	want := "Random pick: Nira Jaau — Bipul Chettri\n🎵 Genre: indie | Year: 2016\nhttps://example.com/x"
	if got != want {
		t.Errorf("formatSong wrong:\n got %q\nwant %q", got, want)
	}

	// Unknown genre and year, no URL.
	bare := formatSong(models.Song{ID: 1, Title: "T", Artist: "A"}, "Pick")
	if !strings.Contains(bare, "Genre: Unknown | Year: Unknown") {
		t.Errorf("Expected unknown fallbacks, got %q", bare)
	}
	if strings.Contains(bare, "http") {
		t.Errorf("Expected no URL line, got %q", bare)
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("rock"); got != "Rock" {
		t.Errorf("Expected Rock, got %q", got)
	}
	if got := titleCase(""); got != "" {
		t.Errorf("Expected empty, got %q", got)
	}
}
