// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pahari-music/jukebot/db"
	"github.com/pahari-music/jukebot/models"
)

// setupTestStore opens a private in-memory database with the full schema.
func setupTestStore(t *testing.T) *Store {
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
	return New(conn, "sqlite")
}

func TestSetRatingOverwrites(t *testing.T) {
	st := setupTestStore(t)

	if err := st.SetRating(1, "u1", 5); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}
	if err := st.SetRating(1, "u1", 9); err != nil {
		t.Fatalf("SetRating overwrite failed: %v", err)
	}

	ratings, err := st.RatingsForUser("u1")
	if err != nil {
		t.Fatalf("RatingsForUser failed: %v", err)
	}
	if ratings[1] != 9 {
		t.Errorf("Expected rating 9 after overwrite, got %d", ratings[1])
	}
	if len(ratings) != 1 {
		t.Errorf("Expected exactly one rating row, got %d", len(ratings))
	}
}

func TestSetRatingValidatesRange(t *testing.T) {
	st := setupTestStore(t)

	if err := st.SetRating(1, "u1", 0); err == nil {
		t.Error("Expected error for rating 0")
	}
	if err := st.SetRating(1, "u1", 11); err == nil {
		t.Error("Expected error for rating 11")
	}
}

func TestRatingsTwoUsersSameSongKeepBoth(t *testing.T) {
	st := setupTestStore(t)

	// Two responders rating the same song must both survive; each write
	// touches its own (song, responder) row, never a shared document.
	if err := st.SetRating(1, "u1", 8); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}
	if err := st.SetRating(1, "u2", 3); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}

	ratings, err := st.Ratings()
	if err != nil {
		t.Fatalf("Ratings failed: %v", err)
	}
	if ratings[1]["u1"] != 8 || ratings[1]["u2"] != 3 {
		t.Errorf("Expected both votes to survive, got %v", ratings[1])
	}
}

func TestFavoritesIdempotentAndOrdered(t *testing.T) {
	st := setupTestStore(t)

	added, err := st.AddFavorite("u1", 3)
	if err != nil || !added {
		t.Fatalf("Expected first AddFavorite to report true, got %v %v", added, err)
	}
	added, err = st.AddFavorite("u1", 3)
	if err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if added {
		t.Error("Expected duplicate AddFavorite to report false")
	}

	if _, err := st.AddFavorite("u1", 1); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	ids, err := st.Favorites("u1")
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Errorf("Expected append order [3 1], got %v", ids)
	}
}

func TestBlacklistLifecycle(t *testing.T) {
	st := setupTestStore(t)

	added, err := st.AddBlacklist("u1", 2)
	if err != nil || !added {
		t.Fatalf("Expected AddBlacklist true, got %v %v", added, err)
	}
	if added, _ := st.AddBlacklist("u1", 2); added {
		t.Error("Expected duplicate AddBlacklist to report false")
	}

	set, err := st.Blacklist("u1")
	if err != nil {
		t.Fatalf("Blacklist failed: %v", err)
	}
	if !set[2] {
		t.Error("Expected song 2 in blacklist set")
	}

	removed, err := st.RemoveBlacklist("u1", 2)
	if err != nil || !removed {
		t.Fatalf("Expected RemoveBlacklist true, got %v %v", removed, err)
	}
	if removed, _ := st.RemoveBlacklist("u1", 2); removed {
		t.Error("Expected second RemoveBlacklist to report false")
	}

	// Another responder's blacklist is untouched throughout.
	if set, _ := st.Blacklist("u2"); len(set) != 0 {
		t.Errorf("Expected empty blacklist for u2, got %v", set)
	}
}

func TestLastShownOverwrites(t *testing.T) {
	st := setupTestStore(t)

	if _, found, err := st.LastShown("u1"); err != nil || found {
		t.Fatalf("Expected no last shown initially, got found=%v err=%v", found, err)
	}

	first := models.LastShown{SongID: 1, Title: "A", Artist: "X", ShownAt: time.Now()}
	if err := st.SetLastShown("u1", first); err != nil {
		t.Fatalf("SetLastShown failed: %v", err)
	}
	second := models.LastShown{SongID: 2, Title: "B", Artist: "Y", ShownAt: time.Now()}
	if err := st.SetLastShown("u1", second); err != nil {
		t.Fatalf("SetLastShown overwrite failed: %v", err)
	}

	ls, found, err := st.LastShown("u1")
	if err != nil || !found {
		t.Fatalf("LastShown failed: found=%v err=%v", found, err)
	}
	if ls.SongID != 2 || ls.Title != "B" {
		t.Errorf("Expected last shown song 2, got %+v", ls)
	}
}

func testBattleContext() models.BattleContext {
	return models.BattleContext{
		BattleID:  "100_1700000000",
		Song1:     models.BattleSide{ID: 1, Title: "A", Artist: "X"},
		Song2:     models.BattleSide{ID: 2, Title: "B", Artist: "Y"},
		ChatID:    100,
		StartedAt: time.Now(),
	}
}

func TestRecordBattleVote(t *testing.T) {
	st := setupTestStore(t)
	ctx := testBattleContext()

	if err := st.RecordBattleVote(ctx, "u1", 0); err != nil {
		t.Fatalf("RecordBattleVote failed: %v", err)
	}
	if err := st.RecordBattleVote(ctx, "u2", 1); err != nil {
		t.Fatalf("RecordBattleVote failed: %v", err)
	}
	// Changing one's vote overwrites, never duplicates.
	if err := st.RecordBattleVote(ctx, "u1", 1); err != nil {
		t.Fatalf("RecordBattleVote overwrite failed: %v", err)
	}

	battles, err := st.Battles()
	if err != nil {
		t.Fatalf("Battles failed: %v", err)
	}
	b, ok := battles[ctx.BattleID]
	if !ok {
		t.Fatal("Expected battle to be seeded by first vote")
	}
	if b.Song1.Title != "A" || b.Song2.Title != "B" {
		t.Errorf("Battle sides wrong: %+v", b)
	}
	if len(b.Votes) != 2 || b.Votes["u1"] != 1 || b.Votes["u2"] != 1 {
		t.Errorf("Expected votes u1=1 u2=1, got %v", b.Votes)
	}
}

func TestRecordBattleVoteValidatesChoice(t *testing.T) {
	st := setupTestStore(t)

	if err := st.RecordBattleVote(testBattleContext(), "u1", 2); err == nil {
		t.Error("Expected error for choice 2")
	}
}

func TestEmpty(t *testing.T) {
	st := setupTestStore(t)

	empty, err := st.Empty()
	if err != nil || !empty {
		t.Fatalf("Expected fresh store to be empty, got %v %v", empty, err)
	}

	if err := st.SetRating(1, "u1", 5); err != nil {
		t.Fatalf("SetRating failed: %v", err)
	}
	empty, err = st.Empty()
	if err != nil || empty {
		t.Errorf("Expected store with a rating to be non-empty, got %v %v", empty, err)
	}
}
