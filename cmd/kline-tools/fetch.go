package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/google/subcommands"

	"kline-tools/internal/app"
	"kline-tools/internal/fetch"
)

// fetchCmd downloads klines from the Binance futures API into the data dir.
type fetchCmd struct {
	app *App

	dataType  string
	symbol    string
	timeframe string
	from      string
	to        string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download klines from Binance futures" }
func (*fetchCmd) Usage() string {
	return `fetch -symbol SYM [-tf TF] [-type continuous|mark-price] -from YYYY-MM-DD [-to YYYY-MM-DD]:
  Download klines and save them as {DATA_DIR}/{kind}/{symbol}/{tf}.{SAVE_FORMAT}.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataType, "type", "continuous", "kline kind: continuous or mark-price")
	f.StringVar(&c.symbol, "symbol", "", "symbol, e.g. BTCUSDT")
	f.StringVar(&c.timeframe, "tf", "1h", "timeframe, e.g. 1m, 1h, 1d")
	f.StringVar(&c.from, "from", "", "range start, YYYY-MM-DD (UTC)")
	f.StringVar(&c.to, "to", "", "range end, YYYY-MM-DD (UTC); defaults to today")
}

func (c *fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.from == "" {
		slog.Error("-symbol and -from are required")
		return subcommands.ExitUsageError
	}
	kind, err := fetch.KindFromString(c.dataType)
	if err != nil {
		slog.Error("invalid kline kind", "error", err)
		return subcommands.ExitUsageError
	}
	from, err := time.ParseInLocation("2006-01-02", c.from, time.UTC)
	if err != nil {
		slog.Error("invalid -from date", "error", err)
		return subcommands.ExitUsageError
	}
	to := time.Now().UTC()
	if c.to != "" {
		if to, err = time.ParseInLocation("2006-01-02", c.to, time.UTC); err != nil {
			slog.Error("invalid -to date", "error", err)
			return subcommands.ExitUsageError
		}
	}

	client, err := app.NewFetchClient(c.app.Config)
	if err != nil {
		slog.Error("failed to create fetch client", "error", err)
		return subcommands.ExitFailure
	}
	path, err := client.FetchAndSave(ctx, kind, c.symbol, c.timeframe, from, to)
	if err != nil {
		slog.Error("fetch failed", "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("fetch done", "path", path)
	return subcommands.ExitSuccess
}
