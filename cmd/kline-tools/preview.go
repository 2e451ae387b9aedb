package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"kline-tools/internal/barview"
)

// previewCmd dumps a bounded head/tail window of a kline file with
// human-readable timestamps.
type previewCmd struct {
	app *App

	path      string
	dataType  string
	symbol    string
	timeframe string
	head      int
	tail      int
	raw       bool
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "print a head/tail preview of a kline file" }
func (*previewCmd) Usage() string {
	return `preview [-path file | -symbol SYM -tf TF [-type continuous|mark-price]] [-head N] [-tail N] [-raw]:
  Print the first and last rows of a kline parquet file with timestamps
  rewritten as UTC calendar strings.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "kline file path (overrides -type/-symbol/-tf)")
	f.StringVar(&c.dataType, "type", "continuous", "kline kind: continuous or mark-price")
	f.StringVar(&c.symbol, "symbol", "", "symbol, e.g. BTCUSDT")
	f.StringVar(&c.timeframe, "tf", "1h", "timeframe, e.g. 1m, 1h, 1d")
	f.IntVar(&c.head, "head", c.app.Config.HeadRows, "rows from the start")
	f.IntVar(&c.tail, "tail", c.app.Config.TailRows, "rows from the end")
	f.BoolVar(&c.raw, "raw", false, "also print the unformatted dump first")
}

func (c *previewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, ok := resolveKlinePath(c.app, c.path, c.dataType, c.symbol, c.timeframe)
	if !ok {
		return subcommands.ExitUsageError
	}

	table, err := barview.Load(path)
	if err != nil {
		slog.Error("failed to load kline file", "error", err)
		return subcommands.ExitFailure
	}

	p := c.app.Previewer
	if c.raw {
		if err := p.RenderRaw(barview.Select(table, c.head, c.tail)); err != nil {
			slog.Error("failed to render raw preview", "error", err)
			return subcommands.ExitFailure
		}
	}
	if err := p.Preview(table, c.head, c.tail); err != nil {
		slog.Error("failed to render preview", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
