// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"log/slog"

	"github.com/pahari-music/jukebot/models"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/state"
)

// Processor turns poll-answer events into feedback writes. It is the only
// consumer of the correlation registry.
type Processor struct {
	state    *state.Store
	registry *registry.Registry
}

func NewProcessor(st *state.Store, reg *registry.Registry) *Processor {
	return &Processor{state: st, registry: reg}
}

// HandlePollAnswer resolves the answered poll and captures the feedback.
// Answers with no pending context are transport artifacts (poll from a
// previous process, or not ours) and are dropped silently; answers with an
// empty option list are retractions and are ignored.
func (p *Processor) HandlePollAnswer(ev models.PollAnswerEvent) {
	if len(ev.OptionIndexes) == 0 {
		return
	}
	chosen := ev.OptionIndexes[0]

	ctx, ok := p.registry.Resolve(ev.PollID)
	if !ok {
		slog.Debug("poll answer without pending context, dropping", "poll_id", ev.PollID)
		return
	}

	switch c := ctx.(type) {
	case models.RatingContext:
		p.captureRating(c, ev.ResponderID, chosen)
	case models.BattleContext:
		p.captureBattleVote(c, ev.ResponderID, chosen)
	default:
		slog.Warn("unknown poll context type, dropping", "poll_id", ev.PollID)
	}
}

// captureRating converts the 0-based option index to a 1-10 rating and
// writes it; a later answer for the same (song, responder) overwrites.
func (p *Processor) captureRating(ctx models.RatingContext, responderID string, chosen int) {
	rating := chosen + 1
	if err := p.state.SetRating(ctx.SongID, responderID, rating); err != nil {
		slog.Error("failed to save rating", "song_id", ctx.SongID, "responder_id", responderID, "error", err)
		return
	}
	slog.Info("rating captured", "song_id", ctx.SongID, "responder_id", responderID, "rating", rating)
}

// captureBattleVote records the vote, seeding the battle on first vote.
func (p *Processor) captureBattleVote(ctx models.BattleContext, responderID string, chosen int) {
	if err := p.state.RecordBattleVote(ctx, responderID, chosen); err != nil {
		slog.Error("failed to save battle vote", "battle_id", ctx.BattleID, "responder_id", responderID, "error", err)
		return
	}
	slog.Info("battle vote captured", "battle_id", ctx.BattleID, "responder_id", responderID, "choice", chosen)
}
