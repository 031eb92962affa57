package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	BridgeURL       string
	CatalogPath     string
	QuotesPath      string
	LegacyStatePath string
	AdminIDs        []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var admins string

	fs := flag.NewFlagSet("jukebot", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BridgeURL, "b", "", "Transport bridge base URL")

	// Data files
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Song catalog JSON path")
	fs.StringVar(&cfg.QuotesPath, "quotes", "", "Quotes JSON path")
	fs.StringVar(&cfg.LegacyStatePath, "legacy-state", "", "Legacy feedback JSON to import on first run")

	fs.StringVar(&admins, "admins", "", "Comma-separated admin responder IDs")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3320 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "jukebot.db"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	// The bridge MUST be provided: without it the engine has no way to talk
	if cfg.BridgeURL == "" {
		cfg.BridgeURL = os.Getenv("BRIDGE_URL")
	}
	if cfg.BridgeURL == "" {
		return Config{}, errors.New("bridge URL required (use -b or BRIDGE_URL env)")
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
		if cfg.CatalogPath == "" {
			cfg.CatalogPath = "songs.json"
		}
	}
	if cfg.QuotesPath == "" {
		cfg.QuotesPath = os.Getenv("QUOTES_PATH")
		if cfg.QuotesPath == "" {
			cfg.QuotesPath = "quotes.json"
		}
	}
	if cfg.LegacyStatePath == "" {
		cfg.LegacyStatePath = os.Getenv("LEGACY_STATE_PATH")
	}

	if admins == "" {
		admins = os.Getenv("ADMIN_IDS")
	}
	for _, id := range strings.Split(admins, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			cfg.AdminIDs = append(cfg.AdminIDs, id)
		}
	}

	return cfg, nil
}
