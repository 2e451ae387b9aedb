package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"kline-tools/internal/barview"
)

// gapsCmd reports bars whose open-time delta deviates from the table's
// interval, i.e. missing data.
type gapsCmd struct {
	app *App

	path      string
	dataType  string
	symbol    string
	timeframe string
}

func (*gapsCmd) Name() string     { return "gaps" }
func (*gapsCmd) Synopsis() string { return "list missing-bar gaps in a kline file" }
func (*gapsCmd) Usage() string {
	return `gaps [-path file | -symbol SYM -tf TF [-type continuous|mark-price]]:
  Check that consecutive open times keep a constant delta and print every
  open time at which the delta deviates.
`
}

func (c *gapsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "kline file path (overrides -type/-symbol/-tf)")
	f.StringVar(&c.dataType, "type", "continuous", "kline kind: continuous or mark-price")
	f.StringVar(&c.symbol, "symbol", "", "symbol, e.g. BTCUSDT")
	f.StringVar(&c.timeframe, "tf", "1h", "timeframe, e.g. 1m, 1h, 1d")
}

func (c *gapsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, ok := resolveKlinePath(c.app, c.path, c.dataType, c.symbol, c.timeframe)
	if !ok {
		return subcommands.ExitUsageError
	}

	table, err := barview.Load(path)
	if err != nil {
		slog.Error("failed to load kline file", "error", err)
		return subcommands.ExitFailure
	}

	opts := c.app.Previewer.Opts
	count := 0
	for ts := range barview.FindGaps(table) {
		formatted, err := barview.FormatEpoch(ts, opts)
		if err != nil {
			slog.Error("failed to format gap timestamp", "error", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stdout, "gap at %s (%d)\n", formatted, ts)
		count++
	}
	if count == 0 {
		fmt.Fprintln(os.Stdout, "no gaps")
	} else {
		fmt.Fprintf(os.Stdout, "gaps: %d in %d rows\n", count, table.Len())
	}
	return subcommands.ExitSuccess
}
