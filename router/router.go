// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/pahari-music/jukebot/feedback"
	"github.com/pahari-music/jukebot/handlers"
	"github.com/pahari-music/jukebot/middleware"
	"github.com/pahari-music/jukebot/models"
)

// NewRouter wires the two inbound event endpoints to the command handlers
// and the feedback processor.
func NewRouter(env handlers.Env, processor *feedback.Processor) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	discovery := handlers.NewDiscoveryHandler(env)
	prefs := handlers.NewPrefsHandler(env)
	stats := handlers.NewStatsHandler(env)
	battle := handlers.NewBattleHandler(env)
	admin := handlers.NewAdminHandler(env)
	misc := handlers.NewMiscHandler(env)

	commands := map[string]func(models.CommandEvent){
		"start":       misc.Start,
		"quote":       misc.Quote,
		"recommend":   discovery.Recommend,
		"random":      discovery.Random,
		"genre":       discovery.Genre,
		"artist":      discovery.Artist,
		"search":      discovery.Search,
		"discover":    discovery.Discover,
		"similar":     discovery.Similar,
		"favorite":    prefs.Favorite,
		"myfavorites": prefs.MyFavorites,
		"blacklist":   prefs.Blacklist,
		"myratings":   prefs.MyRatings,
		"stats":       stats.Stats,
		"toprated":    stats.TopRated,
		"battlestats": stats.BattleStats,
		"battle":      battle.Battle,
		"trivia":      battle.Trivia,
		"add":         admin.Add,
		"remove":      admin.Remove,
		"reload":      admin.Reload,
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Inbound events from the transport bridge
	mux.HandleFunc("POST /events/command", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		var ev models.CommandEvent
		if err := middleware.ParseJSONBody(r, &ev); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid command event")
			return
		}
		ev.Name = strings.ToLower(strings.TrimPrefix(ev.Name, "/"))
		if ev.Name == "" || ev.ResponderID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "name and responder_id required")
			return
		}

		handler, ok := commands[ev.Name]
		if !ok {
			handler = misc.Unknown
		}
		handler(ev)

		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	mux.HandleFunc("POST /events/poll-answer", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		var ev models.PollAnswerEvent
		if err := middleware.ParseJSONBody(r, &ev); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll answer event")
			return
		}
		if ev.PollID == "" || ev.ResponderID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id and responder_id required")
			return
		}

		processor.HandlePollAnswer(ev)
		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jukebot API v1"))
	})

	return mux
}
