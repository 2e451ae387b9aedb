// Package chart renders a kline table as an interactive HTML candlestick
// chart with optional indicator line overlays. Overlay series align with the
// table by row index.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"kline-tools/internal/barview"
	"kline-tools/internal/indicator"
)

var overlayColors = []string{"red", "yellow", "blue", "green", "purple"}

// Render writes the chart HTML for t and its overlays to w.
func Render(w io.Writer, title string, t barview.Table, overlays []indicator.Series, fopts barview.FormatOptions) error {
	x := make([]string, 0, t.Len())
	candles := make([]opts.KlineData, 0, t.Len())
	for _, b := range t.Bars {
		ts, err := barview.FormatEpoch(b.OpenTime, fopts)
		if err != nil {
			return fmt.Errorf("chart x axis: %w", err)
		}
		x = append(x, ts)
		// echarts kline order: open, close, lowest, highest
		candles = append(candles, opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}})
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Scale: true}),
		charts.WithDataZoomOpts(opts.DataZoom{Start: 0, End: 100}),
	)
	kline.SetXAxis(x).AddSeries("Candlestick", candles)

	for i, s := range overlays {
		points := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			points = append(points, opts.LineData{Value: v})
		}
		line := charts.NewLine()
		line.SetXAxis(x).AddSeries(s.Name, points,
			charts.WithLineStyleOpts(opts.LineStyle{Color: overlayColors[i%len(overlayColors)]}))
		kline.Overlap(line)
	}

	return kline.Render(w)
}
