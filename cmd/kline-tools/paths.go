package main

import (
	"log/slog"

	"kline-tools/internal/fetch"
)

// resolveKlinePath turns either an explicit -path or the -type/-symbol/-tf
// triple into a kline file path under the configured data dir.
func resolveKlinePath(a *App, path, dataType, symbol, timeframe string) (string, bool) {
	if path != "" {
		return path, true
	}
	kind, err := fetch.KindFromString(dataType)
	if err != nil {
		slog.Error("invalid kline kind", "error", err)
		return "", false
	}
	if symbol == "" {
		slog.Error("either -path or -symbol is required")
		return "", false
	}
	return a.Config.KlinePath(string(kind), symbol, timeframe), true
}
