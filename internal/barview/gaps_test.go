package barview

import (
	"slices"
	"testing"

	"kline-tools/internal/model"
)

func tableWithOpenTimes(opens ...int64) Table {
	bars := make([]model.Bar, 0, len(opens))
	for _, o := range opens {
		bars = append(bars, model.Bar{OpenTime: o, CloseTime: o + 1})
	}
	return Table{Bars: bars}
}

func TestFindGaps(t *testing.T) {
	const d = int64(3600000)
	tests := []struct {
		name  string
		opens []int64
		want  []int64
	}{
		{"empty", nil, nil},
		{"single row", []int64{0}, nil},
		{"two rows", []int64{0, d}, nil},
		{"constant delta", []int64{0, d, 2 * d, 3 * d}, nil},
		{"one gap", []int64{0, d, 3 * d}, []int64{3 * d}},
		{"two gaps", []int64{0, d, 3 * d, 4 * d, 7 * d}, []int64{3 * d, 7 * d}},
		{"nonzero start", []int64{100, 100 + d, 100 + 3*d}, []int64{100 + 3*d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(FindGaps(tableWithOpenTimes(tt.opens...)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("gaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindGapsStopsEarly(t *testing.T) {
	const d = int64(60000)
	tbl := tableWithOpenTimes(0, d, 3*d, 4*d, 7*d)
	var first int64
	for ts := range FindGaps(tbl) {
		first = ts
		break
	}
	if first != 3*d {
		t.Errorf("first gap = %d, want %d", first, 3*d)
	}
}
