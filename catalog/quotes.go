// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadQuotes reads the music-quote list for /quote. Missing or malformed
// files degrade to an empty list; the command then reports no quotes.
func LoadQuotes(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to read quotes", "path", path, "error", err)
		}
		return nil
	}

	var quotes []string
	if err := json.Unmarshal(data, &quotes); err != nil {
		slog.Error("invalid quotes JSON", "path", path, "error", fmt.Errorf("decode: %w", err))
		return nil
	}
	return quotes
}
