// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/testutil"
)

func setLastShown(t *testing.T, env Env, songID int, title, artist string) {
	t.Helper()
	err := env.State.SetLastShown("u1", models.LastShown{SongID: songID, Title: title, Artist: artist, ShownAt: time.Now()})
	if err != nil {
		t.Fatalf("SetLastShown failed: %v", err)
	}
}

func TestFavoriteWithoutReferent(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	NewPrefsHandler(env).Favorite(cmd("favorite"))

	msg := fake.LastMessage(t)
	if !strings.Contains(msg, "No recent song to favorite!") {
		t.Errorf("Expected no-referent reply, got %q", msg)
	}
}

func TestFavoriteAddAndDuplicate(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())
	setLastShown(t, env, 2, "Parelima", "1974 AD")
	h := NewPrefsHandler(env)

	h.Favorite(cmd("favorite"))
	if msg := fake.LastMessage(t); msg != "❤️ Added to favorites: Parelima — 1974 AD" {
		t.Errorf("Expected added reply, got %q", msg)
	}

	h.Favorite(cmd("favorite"))
	if msg := fake.LastMessage(t); msg != "💖 Already in favorites: Parelima — 1974 AD" {
		t.Errorf("Expected duplicate reply, got %q", msg)
	}
}

func TestMyFavoritesEmpty(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	NewPrefsHandler(env).MyFavorites(cmd("myfavorites"))

	msg := fake.LastMessage(t)
	if !strings.Contains(msg, "No favorites yet!") {
		t.Errorf("Expected empty reply, got %q", msg)
	}
}

func TestMyFavoritesSections(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	// One explicit favorite (also rated) and one 8+ rating.
	if _, err := env.State.AddFavorite("u1", 2); err != nil {
		t.Fatal(err)
	}
	if err := env.State.SetRating(2, "u1", 9); err != nil {
		t.Fatal(err)
	}
	if err := env.State.SetRating(5, "u1", 8); err != nil {
		t.Fatal(err)
	}

	NewPrefsHandler(env).MyFavorites(cmd("myfavorites"))

	msg := fake.LastMessage(t)
	if !strings.Contains(msg, "💖 Explicitly Favorited:") {
		t.Errorf("Expected explicit section, got %q", msg)
	}
	if !strings.Contains(msg, "• Parelima — 1974 AD (9/10)") {
		t.Errorf("Expected rated annotation, got %q", msg)
	}
	if !strings.Contains(msg, "⭐ Highly Rated (8+):") {
		t.Errorf("Expected high-rated section, got %q", msg)
	}
	if !strings.Contains(msg, "• Nira Jaau — Bipul Chettri (8/10)") {
		t.Errorf("Expected high-rated row, got %q", msg)
	}
	// Explicit favorites never repeat in the high-rated section.
	if strings.Count(msg, "Parelima") != 1 {
		t.Errorf("Expected Parelima once, got %q", msg)
	}
}

func TestBlacklistShowEmpty(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())

	NewPrefsHandler(env).Blacklist(cmd("blacklist"))

	msg := fake.LastMessage(t)
	if !strings.Contains(msg, "Your blacklist is empty!") {
		t.Errorf("Expected empty-blacklist reply, got %q", msg)
	}
}

func TestBlacklistAddRemoveFlow(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())
	setLastShown(t, env, 4, "Chiso Chiso Hawama", "Aruna Lama")
	h := NewPrefsHandler(env)

	h.Blacklist(cmd("blacklist", "add"))
	if msg := fake.LastMessage(t); !strings.HasPrefix(msg, "🚫 Added to blacklist: Chiso Chiso Hawama — Aruna Lama") {
		t.Errorf("Expected add reply, got %q", msg)
	}

	h.Blacklist(cmd("blacklist", "add"))
	if msg := fake.LastMessage(t); !strings.HasPrefix(msg, "Already in your blacklist") {
		t.Errorf("Expected duplicate reply, got %q", msg)
	}

	h.Blacklist(cmd("blacklist"))
	if msg := fake.LastMessage(t); !strings.Contains(msg, "• [4] Chiso Chiso Hawama — Aruna Lama") {
		t.Errorf("Expected listing, got %q", msg)
	}

	h.Blacklist(cmd("blacklist", "remove", "4"))
	if msg := fake.LastMessage(t); msg != "✅ Removed from blacklist: Chiso Chiso Hawama — Aruna Lama" {
		t.Errorf("Expected remove reply, got %q", msg)
	}

	h.Blacklist(cmd("blacklist", "remove", "4"))
	if msg := fake.LastMessage(t); msg != "Song 4 is not in your blacklist." {
		t.Errorf("Expected not-blacklisted reply, got %q", msg)
	}
}

func TestBlacklistRemoveBadArgs(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())
	h := NewPrefsHandler(env)

	h.Blacklist(cmd("blacklist", "remove"))
	if msg := fake.LastMessage(t); msg != "Usage: /blacklist remove [song_id]" {
		t.Errorf("Expected usage, got %q", msg)
	}

	h.Blacklist(cmd("blacklist", "remove", "abc"))
	if msg := fake.LastMessage(t); msg != "Invalid song ID: abc" {
		t.Errorf("Expected invalid-ID reply, got %q", msg)
	}
}

func TestBlacklistHidesFromSelection(t *testing.T) {
	songs := []models.Song{
		{ID: 1, Title: "Only", Artist: "A", Genre: "rock"},
		{ID: 2, Title: "Other", Artist: "B", Genre: "rock"},
	}
	env, fake := setupEnv(t, songs)
	if _, err := env.State.AddBlacklist("u1", 1); err != nil {
		t.Fatal(err)
	}

	// Every random pick must avoid the blacklisted song.
	for i := 0; i < 10; i++ {
		NewDiscoveryHandler(env).Random(cmd("random"))
		if msg := fake.LastMessage(t); strings.Contains(msg, "Only") {
			t.Fatalf("Blacklisted song surfaced: %q", msg)
		}
	}
}

func TestMyRatings(t *testing.T) {
	env, fake := setupEnv(t, testutil.TestSongs())
	h := NewPrefsHandler(env)

	h.MyRatings(cmd("myratings"))
	if msg := fake.LastMessage(t); !strings.Contains(msg, "You haven't rated any songs yet!") {
		t.Errorf("Expected empty reply, got %q", msg)
	}

	if err := env.State.SetRating(1, "u1", 3); err != nil {
		t.Fatal(err)
	}
	if err := env.State.SetRating(2, "u1", 10); err != nil {
		t.Fatal(err)
	}

	h.MyRatings(cmd("myratings"))
	msg := fake.LastMessage(t)
	if !strings.HasPrefix(msg, "🎭 Your Ratings (2 songs):") {
		t.Errorf("Expected header, got %q", msg)
	}
	// Highest first, stars matching the rating.
	tenStars := strings.Repeat("⭐", 10)
	if !strings.Contains(msg, tenStars+" 10/10 - Parelima — 1974 AD") {
		t.Errorf("Expected ten-star row first, got %q", msg)
	}
	if strings.Index(msg, "Parelima") > strings.Index(msg, "Resham Firiri") {
		t.Errorf("Expected rating-descending order, got %q", msg)
	}
}
