// Package fetch downloads Binance USDⓈ-M futures klines and persists them
// through a pluggable PacketSaver. One invocation fetches one symbol and
// timeframe over one date range.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"kline-tools/internal/model"
	"kline-tools/internal/saver"
)

const (
	futuresEndpoint      = "https://fapi.binance.com"
	continuousKlinesPath = "/fapi/v1/continuousKlines"
	markPriceKlinesPath  = "/fapi/v1/markPriceKlines"

	// Binance caps klines responses at 1000 rows per request.
	maxLimit = 1000
)

// Kind selects which kline endpoint and directory a fetch targets.
type Kind string

const (
	Continuous Kind = "Continuous Klines"
	MarkPrice  Kind = "Mark Price Klines"
)

// KindFromString maps a CLI spelling to a Kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "continuous":
		return Continuous, nil
	case "mark-price":
		return MarkPrice, nil
	default:
		return "", fmt.Errorf("unsupported kline kind: %s. Options: continuous, mark-price", s)
	}
}

// Client fetches klines over HTTP and saves them below baseDir as
// {baseDir}/{kind}/{symbol}/{timeframe}.{ext}.
type Client struct {
	http    *resty.Client
	saver   saver.PacketSaver
	baseDir string
}

// NewClient creates a Client. The saver decides the on-disk format.
func NewClient(baseDir string, s saver.PacketSaver) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(futuresEndpoint).
			SetTimeout(2 * time.Minute),
		saver:   s,
		baseDir: baseDir,
	}
}

// Fetch downloads all klines of one symbol and timeframe in [from, to),
// chunked at the API row limit, in chronological order.
func (c *Client) Fetch(ctx context.Context, kind Kind, symbol, timeframe string, from, to time.Time) ([]model.Bar, error) {
	interval, err := ParseTimeframe(timeframe)
	if err != nil {
		return nil, err
	}

	fromMs := from.UTC().UnixMilli()
	toMs := to.UTC().UnixMilli()
	chunks := splitRange(fromMs, toMs, interval.Milliseconds(), maxLimit)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("empty date range %s to %s", from, to)
	}
	slog.Info("fetch klines", "kind", string(kind), "symbol", symbol, "timeframe", timeframe, "chunks", len(chunks))

	bars := make([]model.Bar, 0, (toMs-fromMs)/interval.Milliseconds()+1)
	for i, ch := range chunks {
		chunk, err := c.fetchChunk(ctx, kind, symbol, timeframe, ch[0], ch[1])
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		bars = append(bars, chunk...)
	}
	return bars, nil
}

// FetchAndSave fetches and writes a single file through the configured saver.
// Returns the written path.
func (c *Client) FetchAndSave(ctx context.Context, kind Kind, symbol, timeframe string, from, to time.Time) (string, error) {
	if c.saver == nil {
		return "", fmt.Errorf("no saver configured")
	}
	bars, err := c.Fetch(ctx, kind, symbol, timeframe, from, to)
	if err != nil {
		return "", err
	}
	if len(bars) == 0 {
		return "", fmt.Errorf("no klines returned for %s %s", symbol, timeframe)
	}

	dir := filepath.Join(c.baseDir, string(kind), symbol)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, timeframe+"."+c.saver.Extension())
	if err := c.saver.Save(bars, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	slog.Info("saved klines", "path", path, "bars", len(bars))
	return path, nil
}

func (c *Client) fetchChunk(ctx context.Context, kind Kind, symbol, timeframe string, fromMs, toMs int64) ([]model.Bar, error) {
	params := map[string]string{
		"interval":  timeframe,
		"startTime": strconv.FormatInt(fromMs, 10),
		"endTime":   strconv.FormatInt(toMs, 10),
		"limit":     strconv.Itoa(maxLimit),
	}
	path := markPriceKlinesPath
	if kind == Continuous {
		path = continuousKlinesPath
		params["pair"] = symbol
		params["contractType"] = "PERPETUAL"
	} else {
		params["symbol"] = symbol
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("API status %d: %s", resp.StatusCode(), resp.String())
	}
	return DecodeKlines(resp.Body())
}

// splitRange cuts [fromMs, toMs) into chunks of at most limit intervals.
func splitRange(fromMs, toMs, intervalMs int64, limit int) [][2]int64 {
	var chunks [][2]int64
	if fromMs >= toMs || intervalMs <= 0 {
		return chunks
	}
	step := intervalMs * int64(limit)
	for start := fromMs; start < toMs; start += step {
		end := start + step
		if end > toMs {
			end = toMs
		}
		chunks = append(chunks, [2]int64{start, end})
	}
	return chunks
}

// ParseTimeframe converts a Binance timeframe string (1m, 5m, 1h, 4h, 1d, 1w)
// to its bar interval.
func ParseTimeframe(tf string) (time.Duration, error) {
	if len(tf) < 2 {
		return 0, fmt.Errorf("invalid timeframe: %q", tf)
	}
	n, err := strconv.Atoi(tf[:len(tf)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid timeframe: %q", tf)
	}
	var unit time.Duration
	switch tf[len(tf)-1] {
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("invalid timeframe unit in %q", tf)
	}
	return time.Duration(n) * unit, nil
}
