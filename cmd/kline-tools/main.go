package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"kline-tools/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&previewCmd{app: a}, "klines")
	subcommands.Register(&gapsCmd{app: a}, "klines")
	subcommands.Register(&chartCmd{app: a}, "klines")
	subcommands.Register(&fetchCmd{app: a}, "klines")
	subcommands.Register(&transcribeCmd{app: a}, "misc")
	subcommands.Register(&requestCmd{}, "misc")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
