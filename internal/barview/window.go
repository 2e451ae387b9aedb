package barview

import (
	"fmt"
	"time"

	"kline-tools/internal/model"
)

// Window is a head/tail projection of a Table. Both slices are copies: the
// caller may mutate them without touching the source table. When head+tail
// exceeds the table length the slices overlap; that is the usual head/tail
// convention and is kept as-is.
type Window struct {
	Head  []model.Bar
	Tail  []model.Bar
	Total int // row count of the source table, not of the slices
}

// Select returns the first head and last tail rows of t. Counts clamp to the
// table length; negative counts select nothing.
func Select(t Table, head, tail int) Window {
	n := len(t.Bars)
	h := clamp(head, n)
	tl := clamp(tail, n)

	w := Window{
		Head:  make([]model.Bar, h),
		Tail:  make([]model.Bar, tl),
		Total: n,
	}
	copy(w.Head, t.Bars[:h])
	copy(w.Tail, t.Bars[n-tl:])
	return w
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// TimeUnit is the unit of the raw OpenTime/CloseTime integers.
type TimeUnit string

const (
	UnitMilli TimeUnit = "ms"
	UnitSec   TimeUnit = "s"
)

// DefaultLayout is the calendar layout used for formatted timestamps.
const DefaultLayout = "2006-01-02 15:04:05"

// FormatOptions control the epoch-to-calendar rewrite. Zero values fall back
// to milliseconds and DefaultLayout in UTC.
type FormatOptions struct {
	Unit   TimeUnit
	Layout string
}

func (o FormatOptions) unit() TimeUnit {
	if o.Unit == "" {
		return UnitMilli
	}
	return o.Unit
}

func (o FormatOptions) layout() string {
	if o.Layout == "" {
		return DefaultLayout
	}
	return o.Layout
}

// FormatError reports an OpenTime/CloseTime value that is not a valid epoch
// timestamp.
type FormatError struct {
	Column string
	Value  int64
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("column %q: %d is not a valid epoch timestamp", e.Column, e.Value)
}

// ViewRow is one previewed bar with timestamps rewritten as calendar strings.
type ViewRow struct {
	OpenTime  string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	CloseTime string
}

// View is a formatted Window. The type change from Window guarantees the
// rewrite is applied exactly once.
type View struct {
	Head  []ViewRow
	Tail  []ViewRow
	Total int
}

// Format rewrites OpenTime and CloseTime of every row in w as UTC calendar
// strings. Sub-second precision is truncated, never rounded.
func Format(w Window, opts FormatOptions) (View, error) {
	v := View{
		Head:  make([]ViewRow, 0, len(w.Head)),
		Tail:  make([]ViewRow, 0, len(w.Tail)),
		Total: w.Total,
	}
	for _, b := range w.Head {
		r, err := formatRow(b, opts)
		if err != nil {
			return View{}, err
		}
		v.Head = append(v.Head, r)
	}
	for _, b := range w.Tail {
		r, err := formatRow(b, opts)
		if err != nil {
			return View{}, err
		}
		v.Tail = append(v.Tail, r)
	}
	return v, nil
}

func formatRow(b model.Bar, opts FormatOptions) (ViewRow, error) {
	open, err := FormatEpoch(b.OpenTime, opts)
	if err != nil {
		return ViewRow{}, &FormatError{Column: "Open Time", Value: b.OpenTime}
	}
	closed, err := FormatEpoch(b.CloseTime, opts)
	if err != nil {
		return ViewRow{}, &FormatError{Column: "Close Time", Value: b.CloseTime}
	}
	return ViewRow{
		OpenTime:  open,
		Open:      b.Open,
		High:      b.High,
		Low:       b.Low,
		Close:     b.Close,
		Volume:    b.Volume,
		CloseTime: closed,
	}, nil
}

// FormatEpoch converts one raw epoch value to a UTC calendar string.
func FormatEpoch(v int64, opts FormatOptions) (string, error) {
	if v < 0 {
		return "", fmt.Errorf("negative epoch value %d", v)
	}
	var ts time.Time
	switch opts.unit() {
	case UnitSec:
		ts = time.Unix(v, 0)
	default:
		ts = time.UnixMilli(v)
	}
	return ts.UTC().Format(opts.layout()), nil
}
