package barview

import "iter"

// FindGaps yields the OpenTime of every bar whose delta from its predecessor
// deviates from the table's bar interval. The interval is taken from the first
// two rows and is not checked against any configured timeframe. Tables with
// fewer than two rows yield nothing.
//
// The sequence is lazy and single-use.
func FindGaps(t Table) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if len(t.Bars) < 2 {
			return
		}
		interval := t.Bars[1].OpenTime - t.Bars[0].OpenTime
		for i := 2; i < len(t.Bars); i++ {
			if t.Bars[i].OpenTime-t.Bars[i-1].OpenTime != interval {
				if !yield(t.Bars[i].OpenTime) {
					return
				}
			}
		}
	}
}
