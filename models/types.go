package models

import "time"

// Poll context kinds
const (
	ContextRating = "rating"
	ContextBattle = "battle"
)

// Rating bounds (poll option index + 1)
const (
	MinRating = 1
	MaxRating = 10
)

// Event types

// CommandEvent is an inbound chat command forwarded by the transport bridge.
type CommandEvent struct {
	Name        string   `json:"name"`
	Args        []string `json:"args"`
	ChatID      int64    `json:"chat_id"`
	ResponderID string   `json:"responder_id"`
}

// PollAnswerEvent is an inbound poll answer forwarded by the transport bridge.
// OptionIndexes carries the chosen 0-based option positions; rating and
// battle polls are single-answer, so only the first entry is meaningful.
type PollAnswerEvent struct {
	PollID        string `json:"poll_id"`
	ResponderID   string `json:"responder_id"`
	OptionIndexes []int  `json:"option_indexes"`
}

// Domain types

// Song is a catalog record. Year 0 and URL "" mean "not provided".
type Song struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
	Year   int    `json:"year,omitempty"`
	URL    string `json:"url,omitempty"`
}

// LastShown records the most recent song presented to a responder.
// Overwritten on every presentation; consumed by /favorite, /blacklist add
// and /similar as "the referent".
type LastShown struct {
	SongID  int
	Title   string
	Artist  string
	ShownAt time.Time
}

// BattleSide is a denormalized song snapshot frozen at battle creation, so
// a battle stays renderable even if the song later leaves the catalog.
type BattleSide struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Battle is a head-to-head vote between two songs. Votes maps responder ID
// to 0 (Song1) or 1 (Song2); a later vote overwrites the earlier one.
type Battle struct {
	ID        string
	Song1     BattleSide
	Song2     BattleSide
	StartedAt time.Time
	Votes     map[string]int
}

// Pending poll contexts (transient, process lifetime only)

// RatingContext correlates a rating poll back to the song it rates.
type RatingContext struct {
	SongID    int
	SongTitle string
	ChatID    int64
}

// BattleContext correlates a battle poll back to its battle record.
type BattleContext struct {
	BattleID  string
	Song1     BattleSide
	Song2     BattleSide
	ChatID    int64
	StartedAt time.Time
}

// Aggregation results

// SongStats is one row of /stats or /toprated output.
type SongStats struct {
	Song      Song
	Mean      float64
	VoteCount int
}

// RatingEntry is one row of /myratings output.
type RatingEntry struct {
	Song   Song
	Rating int
}

// FavoriteEntry is one row of /myfavorites output. Rating is 0 when the
// responder favorited the song without rating it.
type FavoriteEntry struct {
	Song   Song
	Rating int
}

// BattleRecord is one row of the /battlestats leaderboard.
type BattleRecord struct {
	Song    Song
	Wins    int
	Losses  int
	WinRate float64
}

// Trivia is a prepared quiz poll.
type Trivia struct {
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Error response for the event endpoints

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
