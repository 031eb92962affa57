// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pahari-music/jukebot/feedback"
	"github.com/pahari-music/jukebot/handlers"
	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/testutil"
)

func setupRouter(t *testing.T) (*http.ServeMux, handlers.Env, *testutil.FakeMessenger) {
	t.Helper()

	fake := &testutil.FakeMessenger{}
	env := handlers.Env{
		Catalog:   testutil.TempCatalog(t, testutil.TestSongs()),
		State:     testutil.NewTestState(t),
		Registry:  registry.New(),
		Messenger: fake,
		Quotes:    []string{"q"},
		Cfg:       testutil.GetTestConfig(),
	}
	processor := feedback.NewProcessor(env.State, env.Registry)
	return NewRouter(env, processor), env, fake
}

func TestHealthCheck(t *testing.T) {
	mux, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestCommandEventDispatch(t *testing.T) {
	mux, _, fake := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/command", models.CommandEvent{
		Name: "recommend", ChatID: 100, ResponderID: "u1",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.HasPrefix(fake.LastMessage(t), "Today's pick: ") {
		t.Errorf("Expected recommend to run, got %q", fake.LastMessage(t))
	}
}

func TestCommandEventNormalizesName(t *testing.T) {
	mux, _, fake := setupRouter(t)

	// The bridge may forward the raw "/Recommend" token.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/command", models.CommandEvent{
		Name: "/Recommend", ChatID: 100, ResponderID: "u1",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.HasPrefix(fake.LastMessage(t), "Today's pick: ") {
		t.Errorf("Expected normalized dispatch, got %q", fake.LastMessage(t))
	}
}

func TestCommandEventUnknownFallsThrough(t *testing.T) {
	mux, _, fake := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/command", models.CommandEvent{
		Name: "bogus", ChatID: 100, ResponderID: "u1",
	}, nil))

	// Delivery succeeded from the bridge's point of view.
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.HasPrefix(fake.LastMessage(t), "Unknown command: /bogus") {
		t.Errorf("Expected unknown-command reply, got %q", fake.LastMessage(t))
	}
}

func TestCommandEventValidation(t *testing.T) {
	mux, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/command", models.CommandEvent{
		Name: "recommend", ChatID: 100,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message == "" {
		t.Error("Expected error message")
	}
}

func TestCommandEventMalformedBody(t *testing.T) {
	mux, _, _ := setupRouter(t)

	req := httptest.NewRequest("POST", "/events/command", strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestPollAnswerEventEndToEnd(t *testing.T) {
	mux, env, fake := setupRouter(t)

	// Open a rating poll through the command endpoint.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/command", models.CommandEvent{
		Name: "random", ChatID: 100, ResponderID: "u1",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	poll := fake.LastPoll(t)

	// Answer it through the poll-answer endpoint.
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/poll-answer", models.PollAnswerEvent{
		PollID: poll.PollID, ResponderID: "u2", OptionIndexes: []int{6},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	ratings, err := env.State.RatingsForUser("u2")
	if err != nil {
		t.Fatalf("RatingsForUser failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("Expected one rating, got %v", ratings)
	}
	for _, r := range ratings {
		if r != 7 {
			t.Errorf("Expected rating 7, got %d", r)
		}
	}
}

func TestPollAnswerEventValidation(t *testing.T) {
	mux, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/events/poll-answer", models.PollAnswerEvent{
		ResponderID: "u1", OptionIndexes: []int{1},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
