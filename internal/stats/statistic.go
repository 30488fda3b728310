// Package stats contains statistics accumulation and ranking.
package stats

import (
	"sort"

	"github.com/verte-zerg/svstats/internal/model"
)

// Table tallies label counts per category.
type Table struct {
	counts map[model.Category]map[string]int64
}

// LabelCount is one label of a category with its count.
type LabelCount struct {
	Label string
	Count int64
}

// NewTable returns an empty statistic table.
func NewTable() *Table {
	return &Table{counts: map[model.Category]map[string]int64{}}
}

func (t *Table) category(c model.Category) map[string]int64 {
	labels, ok := t.counts[c]
	if !ok {
		labels = map[string]int64{}
		t.counts[c] = labels
	}
	return labels
}

// Seed makes sure label exists in the category without changing its count.
func (t *Table) Seed(c model.Category, label string) {
	labels := t.category(c)
	if _, ok := labels[label]; !ok {
		labels[label] = 0
	}
}

// Increment adds one to the label count.
func (t *Table) Increment(c model.Category, label string) {
	t.category(c)[label]++
}

// IncrementBy adds amount to the label count. Negative amounts are ignored.
func (t *Table) IncrementBy(c model.Category, label string, amount int64) {
	if amount < 0 {
		return
	}
	t.category(c)[label] += amount
}

// Count returns the count of a label and whether the label is known.
func (t *Table) Count(c model.Category, label string) (int64, bool) {
	n, ok := t.counts[c][label]
	return n, ok
}

// Labels returns every label of a category, including zero counts, sorted by label.
func (t *Table) Labels(c model.Category) []LabelCount {
	labels := t.counts[c]
	out := make([]LabelCount, 0, len(labels))
	for label, n := range labels {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// Rows returns the renderable labels of a category: non-empty with a non-zero
// count, ordered by count descending and then by label.
func (t *Table) Rows(c model.Category) []LabelCount {
	labels := t.counts[c]
	out := make([]LabelCount, 0, len(labels))
	for label, n := range labels {
		if n == 0 || label == "" {
			continue
		}
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Label < out[j].Label
		}
		return out[i].Count > out[j].Count
	})
	return out
}
