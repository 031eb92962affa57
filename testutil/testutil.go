// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pahari-music/jukebot/catalog"
	"github.com/pahari-music/jukebot/cliparse"
	"github.com/pahari-music/jukebot/db"
	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/state"
	"github.com/pahari-music/jukebot/transport"
)

// SetupTestDB opens a private in-memory sqlite database with the full
// schema. The uuid in the DSN keeps parallel tests from sharing a database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// NewTestState returns a state store over a fresh in-memory database.
func NewTestState(t *testing.T) *state.Store {
	t.Helper()
	return state.New(SetupTestDB(t), "sqlite")
}

// TempCatalog writes songs as a catalog file in a temp dir and opens it.
func TempCatalog(t *testing.T, songs []models.Song) *catalog.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "songs.json")
	data, err := json.Marshal(songs)
	if err != nil {
		t.Fatalf("Failed to encode test catalog: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write test catalog: %v", err)
	}
	return catalog.Open(path)
}

// TestSongs is a small catalog covering two genres and a repeated artist.
func TestSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Resham Firiri", Artist: "Sunita Subba", Genre: "folk", Year: 1969},
		{ID: 2, Title: "Parelima", Artist: "1974 AD", Genre: "rock", Year: 1998},
		{ID: 3, Title: "Sambodhan", Artist: "1974 AD", Genre: "rock", Year: 2001},
		{ID: 4, Title: "Chiso Chiso Hawama", Artist: "Aruna Lama", Genre: "folk", Year: 1974},
		{ID: 5, Title: "Nira Jaau", Artist: "Bipul Chettri", Genre: "indie", Year: 2016, URL: "https://example.com/nira"},
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3320,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		BridgeURL:    "http://localhost:9999",
		AdminIDs:     []string{"admin-1"},
	}
}

// SentMessage is one SendMessage call captured by FakeMessenger.
type SentMessage struct {
	ChatID int64
	Text   string
}

// OpenedPoll is one OpenPoll call captured by FakeMessenger.
type OpenedPoll struct {
	PollID   string
	ChatID   int64
	Question string
	Options  []string
	Opts     transport.PollOptions
}

// FakeMessenger records outbound traffic instead of delivering it, and
// mints a fresh poll ID per poll so tests can answer them.
type FakeMessenger struct {
	mu       sync.Mutex
	Messages []SentMessage
	Polls    []OpenedPoll
}

func (f *FakeMessenger) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Messages = append(f.Messages, SentMessage{ChatID: chatID, Text: text})
	return nil
}

func (f *FakeMessenger) OpenPoll(chatID int64, question string, options []string, opts transport.PollOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	poll := OpenedPoll{
		PollID:   uuid.NewString(),
		ChatID:   chatID,
		Question: question,
		Options:  options,
		Opts:     opts,
	}
	f.Polls = append(f.Polls, poll)
	return poll.PollID, nil
}

// LastMessage returns the most recent message text, failing if none exist.
func (f *FakeMessenger) LastMessage(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Messages) == 0 {
		t.Fatal("expected at least one sent message")
	}
	return f.Messages[len(f.Messages)-1].Text
}

// LastPoll returns the most recent opened poll, failing if none exist.
func (f *FakeMessenger) LastPoll(t *testing.T) OpenedPoll {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Polls) == 0 {
		t.Fatal("expected at least one opened poll")
	}
	return f.Polls[len(f.Polls)-1]
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
