package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pahari-music/jukebot/catalog"
	"github.com/pahari-music/jukebot/cliparse"
	"github.com/pahari-music/jukebot/db"
	"github.com/pahari-music/jukebot/feedback"
	"github.com/pahari-music/jukebot/handlers"
	"github.com/pahari-music/jukebot/registry"
	"github.com/pahari-music/jukebot/router"
	"github.com/pahari-music/jukebot/state"
	"github.com/pahari-music/jukebot/transport"
)

func main() {
	var err error

	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the feedback database
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	st := state.New(dbConn, cfg.DatabaseType)

	// One-time import of the legacy whole-document feedback file, only into
	// an empty store so a re-run can never clobber live rows
	if cfg.LegacyStatePath != "" {
		empty, err := st.Empty()
		if err != nil {
			slog.Error("failed to check store state", "error", err)
			os.Exit(1)
		}
		if empty {
			if err := st.ImportLegacy(cfg.LegacyStatePath); err != nil {
				slog.Error("legacy import failed", "path", cfg.LegacyStatePath, "error", err)
				os.Exit(1)
			}
		} else {
			slog.Info("store not empty, skipping legacy import", "path", cfg.LegacyStatePath)
		}
	}

	// Load the song catalog and quotes
	songs := catalog.Open(cfg.CatalogPath)
	quotes := catalog.LoadQuotes(cfg.QuotesPath)

	// Wire the engine
	reg := registry.New()
	processor := feedback.NewProcessor(st, reg)
	env := handlers.Env{
		Catalog:   songs,
		State:     st,
		Registry:  reg,
		Messenger: transport.NewBridgeClient(cfg.BridgeURL),
		Quotes:    quotes,
		Cfg:       cfg,
	}

	// Create router
	mux := router.NewRouter(env, processor)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "bridge", cfg.BridgeURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
