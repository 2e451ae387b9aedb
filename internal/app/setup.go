package app

import (
	"fmt"
	"os"

	"kline-tools/internal/barview"
	"kline-tools/internal/fetch"
	"kline-tools/internal/saver"
	"kline-tools/internal/transcribe"
)

// ProvideConfig loads and validates configuration for Wire.
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvidePreviewer creates the previewer writing reports to stdout.
func ProvidePreviewer(cfg *Config) *barview.Previewer {
	return barview.New(os.Stdout, barview.FormatOptions{
		Unit:   barview.TimeUnit(cfg.TimeUnit),
		Layout: cfg.TimeLayout,
	})
}

// NewFetchClient creates a kline fetch client saving in the configured format.
func NewFetchClient(cfg *Config) (*fetch.Client, error) {
	s := saver.NewPacketSaver(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("invalid SAVE_FORMAT %q, allowed: csv, parquet, json", cfg.SaveFormat)
	}
	return fetch.NewClient(cfg.DataDir, s), nil
}

// NewTranscriber creates the transcription client from config.
func NewTranscriber(cfg *Config) transcribe.Transcriber {
	return transcribe.NewClient(cfg.WhisperBaseURL, cfg.WhisperAPIKey, cfg.WhisperModel)
}
