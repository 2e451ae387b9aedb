package saver

import (
	"strings"

	"kline-tools/internal/model"
)

// PacketSaver persists one fetched batch of bars to a file. The fetcher only
// depends on this interface; the concrete format is injected from config.
type PacketSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewPacketSaver selects an implementation by format (csv, parquet, json).
// Returns nil when the format is not supported.
func NewPacketSaver(format string) PacketSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
