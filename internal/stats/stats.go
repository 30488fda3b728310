// Package stats contains statistics accumulation and ranking.
package stats

// Counters tracks how many records were tallied or skipped during a run.
type Counters struct {
	Counted int64
	Ignored int64
}

// Percent returns count as a percentage of total. A zero total yields 0.
func Percent(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
