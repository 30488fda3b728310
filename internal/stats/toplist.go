// Package stats contains statistics accumulation and ranking.
package stats

import (
	"sort"

	"github.com/verte-zerg/svstats/internal/model"
)

// Toplists keeps ranked entries per metric. Memory stays bounded as long as
// CompactAll runs between batches: each compaction keeps only both extremes.
type Toplists struct {
	entries map[model.Metric][]model.Entry
	order   []model.Metric
	skills  []model.Metric
	isSkill map[model.Metric]bool
}

// NewToplists returns an empty toplist store.
func NewToplists() *Toplists {
	return &Toplists{
		entries: map[model.Metric][]model.Entry{},
		isSkill: map[model.Metric]bool{},
	}
}

func (t *Toplists) ensure(metric model.Metric) {
	if _, ok := t.entries[metric]; ok {
		return
	}
	t.entries[metric] = nil
	t.order = append(t.order, metric)
}

// SeedSkill registers the per-skill toplist and returns its metric.
func (t *Toplists) SeedSkill(skill string) model.Metric {
	metric := model.SkillMetric(skill)
	t.ensure(metric)
	if !t.isSkill[metric] {
		t.isSkill[metric] = true
		t.skills = append(t.skills, metric)
	}
	return metric
}

// Skills returns the registered skill metrics in registration order.
func (t *Toplists) Skills() []model.Metric {
	out := make([]model.Metric, len(t.skills))
	copy(out, t.skills)
	return out
}

// IsSkill reports whether metric was registered with SeedSkill.
func (t *Toplists) IsSkill(metric model.Metric) bool {
	return t.isSkill[metric]
}

// Append adds an entry to the metric.
func (t *Toplists) Append(metric model.Metric, score int64, label string) {
	t.ensure(metric)
	t.entries[metric] = append(t.entries[metric], model.Entry{Score: score, Label: label})
}

// Len returns the number of stored entries of the metric.
func (t *Toplists) Len(metric model.Metric) int {
	return len(t.entries[metric])
}

// Compact drops middle-ranked entries once the metric holds at least 2*limit+2
// of them, keeping the limit+1 highest and the limit+1 lowest scores.
func (t *Toplists) Compact(metric model.Metric, limit int) {
	if limit < 0 {
		return
	}
	entries := t.entries[metric]
	keep := limit + 1
	if len(entries) < 2*keep {
		return
	}
	sortEntries(entries, false)
	compacted := make([]model.Entry, 0, 2*keep)
	compacted = append(compacted, entries[:keep]...)
	compacted = append(compacted, entries[len(entries)-keep:]...)
	t.entries[metric] = compacted
}

// CompactAll compacts every metric.
func (t *Toplists) CompactAll(limit int) {
	for _, metric := range t.order {
		t.Compact(metric, limit)
	}
}

// Render returns up to limit+1 entries ordered by score, highest first unless
// reverse is set. Zero scores are skipped and do not count toward the limit.
func (t *Toplists) Render(metric model.Metric, limit int, reverse bool) []model.Entry {
	if limit < 0 {
		return nil
	}
	sorted := make([]model.Entry, len(t.entries[metric]))
	copy(sorted, t.entries[metric])
	sortEntries(sorted, reverse)

	out := make([]model.Entry, 0, limit+1)
	for _, e := range sorted {
		if len(out) > limit {
			break
		}
		if e.Score == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortEntries(entries []model.Entry, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if ascending {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Score > entries[j].Score
	})
}
