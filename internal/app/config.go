package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration from env. A .env file in the working
// directory is honored when present.
type Config struct {
	DataDir    string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	SaveFormat string `validate:"oneof=csv parquet json"`

	// Preview rendering
	TimeUnit   string `validate:"oneof=ms s"`
	TimeLayout string `validate:"required"`
	HeadRows   int    `validate:"gte=0"`
	TailRows   int    `validate:"gte=0"`

	// Transcription API
	WhisperBaseURL string
	WhisperAPIKey  string
	WhisperModel   string
}

// LoadConfig reads config from a .env file (if any) and the environment, then
// validates it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // absent .env is fine

	cfg := &Config{
		DataDir:        getEnv("DATA_DIR", "data"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SaveFormat:     getSaveFormat(),
		TimeUnit:       getEnv("TIME_UNIT", "ms"),
		TimeLayout:     getEnv("TIME_LAYOUT", "2006-01-02 15:04:05"),
		HeadRows:       getEnvInt("PREVIEW_HEAD", 20),
		TailRows:       getEnvInt("PREVIEW_TAIL", 20),
		WhisperBaseURL: os.Getenv("WHISPER_BASE_URL"),
		WhisperAPIKey:  os.Getenv("WHISPER_API_KEY"),
		WhisperModel:   os.Getenv("WHISPER_MODEL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	default:
		return "parquet"
	}
}

// KlinePath returns the conventional kline file location:
// {DataDir}/{dataType}/{symbol}/{timeframe}.parquet
func (c *Config) KlinePath(dataType, symbol, timeframe string) string {
	return filepath.Join(c.DataDir, dataType, symbol, timeframe+".parquet")
}
