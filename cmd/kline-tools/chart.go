package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/google/subcommands"

	"kline-tools/internal/barview"
	"kline-tools/internal/chart"
	"kline-tools/internal/indicator"
)

// chartCmd renders a kline file as an interactive candlestick chart with
// optional indicator overlays.
type chartCmd struct {
	app *App

	path       string
	dataType   string
	symbol     string
	timeframe  string
	indicators string
	out        string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a candlestick chart as HTML" }
func (*chartCmd) Usage() string {
	return `chart [-path file | -symbol SYM -tf TF] [-indicators a.csv,b.csv] [-out chart.html]:
  Render the kline file as an interactive candlestick chart. Indicator CSV
  files are headerless, one value per row, aligned with the klines by index.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "kline file path (overrides -type/-symbol/-tf)")
	f.StringVar(&c.dataType, "type", "continuous", "kline kind: continuous or mark-price")
	f.StringVar(&c.symbol, "symbol", "", "symbol, e.g. BTCUSDT")
	f.StringVar(&c.timeframe, "tf", "1d", "timeframe, e.g. 1h, 1d")
	f.StringVar(&c.indicators, "indicators", "", "comma-separated indicator CSV paths")
	f.StringVar(&c.out, "out", "chart.html", "output HTML file")
}

func (c *chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, ok := resolveKlinePath(c.app, c.path, c.dataType, c.symbol, c.timeframe)
	if !ok {
		return subcommands.ExitUsageError
	}

	table, err := barview.Load(path)
	if err != nil {
		slog.Error("failed to load kline file", "error", err)
		return subcommands.ExitFailure
	}

	var overlays []indicator.Series
	if c.indicators != "" {
		for _, p := range strings.Split(c.indicators, ",") {
			s, err := indicator.LoadCSV(strings.TrimSpace(p))
			if err != nil {
				slog.Error("failed to load indicator series", "error", err)
				return subcommands.ExitFailure
			}
			if len(s.Values) != table.Len() {
				slog.Warn("indicator length differs from kline count",
					"series", s.Name, "values", len(s.Values), "bars", table.Len())
			}
			overlays = append(overlays, s)
		}
	}

	title := strings.TrimSpace(c.symbol + " " + c.timeframe)
	if c.path != "" {
		title = c.path
	}

	f, err := os.Create(c.out)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := chart.Render(f, title, table, overlays, c.app.Previewer.Opts); err != nil {
		slog.Error("failed to render chart", "error", err)
		return subcommands.ExitFailure
	}
	slog.Info("chart written", "path", c.out, "bars", table.Len(), "overlays", len(overlays))
	return subcommands.ExitSuccess
}
