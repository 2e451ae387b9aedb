package barview

import (
	"errors"
	"testing"

	"kline-tools/internal/model"
)

func hourTable(n int) Table {
	bars := make([]model.Bar, 0, n)
	for i := 0; i < n; i++ {
		open := int64(i) * 3600000
		bars = append(bars, model.Bar{
			OpenTime:  open,
			Open:      100 + float64(i),
			High:      101 + float64(i),
			Low:       99 + float64(i),
			Close:     100.5 + float64(i),
			Volume:    1000,
			CloseTime: open + 3599999,
		})
	}
	return Table{Bars: bars}
}

func TestSelectBounds(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		head, tail int
		wantHead   int
		wantTail   int
	}{
		{"within bounds", 20, 5, 3, 5, 3},
		{"clamped", 20, 1000, 1000, 20, 20},
		{"zero counts", 20, 0, 0, 0, 0},
		{"negative counts", 20, -1, -5, 0, 0},
		{"empty table", 0, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Select(hourTable(tt.rows), tt.head, tt.tail)
			if len(w.Head) != tt.wantHead {
				t.Errorf("head len = %d, want %d", len(w.Head), tt.wantHead)
			}
			if len(w.Tail) != tt.wantTail {
				t.Errorf("tail len = %d, want %d", len(w.Tail), tt.wantTail)
			}
			if w.Total != tt.rows {
				t.Errorf("total = %d, want %d", w.Total, tt.rows)
			}
		})
	}
}

func TestSelectOverlapNotDeduplicated(t *testing.T) {
	tbl := hourTable(20)
	w := Select(tbl, 1000, 1000)
	for i := range tbl.Bars {
		if w.Head[i] != tbl.Bars[i] {
			t.Fatalf("head[%d] = %+v, want full table row", i, w.Head[i])
		}
		if w.Tail[i] != tbl.Bars[i] {
			t.Fatalf("tail[%d] = %+v, want full table row", i, w.Tail[i])
		}
	}
}

func TestSelectCopiesRows(t *testing.T) {
	tbl := hourTable(5)
	w := Select(tbl, 2, 2)
	w.Head[0].Open = -1
	w.Tail[0].Close = -1
	if tbl.Bars[0].Open == -1 || tbl.Bars[3].Close == -1 {
		t.Fatal("mutating a window slice must not mutate the source table")
	}
}

func TestFormatEpochKnownValue(t *testing.T) {
	got, err := FormatEpoch(1567962000000, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "2019-09-08 17:00:00" {
		t.Errorf("got %q, want %q", got, "2019-09-08 17:00:00")
	}
}

func TestFormatEpochTruncates(t *testing.T) {
	// 999 ms of sub-second precision must be dropped, not rounded up.
	got, err := FormatEpoch(1567962000999, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "2019-09-08 17:00:00" {
		t.Errorf("got %q, want truncation to %q", got, "2019-09-08 17:00:00")
	}
}

func TestFormatEpochSecondsUnit(t *testing.T) {
	got, err := FormatEpoch(1567962000, FormatOptions{Unit: UnitSec})
	if err != nil {
		t.Fatal(err)
	}
	if got != "2019-09-08 17:00:00" {
		t.Errorf("got %q, want %q", got, "2019-09-08 17:00:00")
	}
}

func TestFormatNegativeEpoch(t *testing.T) {
	tbl := Table{Bars: []model.Bar{{OpenTime: -1, CloseTime: 1}}}
	_, err := Format(Select(tbl, 1, 0), FormatOptions{})
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want *FormatError", err)
	}
	if ferr.Column != "Open Time" || ferr.Value != -1 {
		t.Errorf("FormatError = %+v, want Open Time / -1", ferr)
	}
}

func TestFormatKeepsTotal(t *testing.T) {
	v, err := Format(Select(hourTable(7), 2, 2), FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if v.Total != 7 {
		t.Errorf("total = %d, want 7", v.Total)
	}
	if len(v.Head) != 2 || len(v.Tail) != 2 {
		t.Errorf("head/tail = %d/%d, want 2/2", len(v.Head), len(v.Tail))
	}
}
