package store

import (
	"context"
	"fmt"

	"github.com/verte-zerg/svstats/internal/model"
)

// Resolver is an in-memory snapshot of the label tables.
type Resolver struct {
	labels map[model.LabelSet][]model.Label
	names  map[model.LabelSet]map[int]string
}

// NewResolver builds a resolver from label lists keyed by set.
func NewResolver(sets map[model.LabelSet][]model.Label) *Resolver {
	r := &Resolver{
		labels: map[model.LabelSet][]model.Label{},
		names:  map[model.LabelSet]map[int]string{},
	}
	for set, labels := range sets {
		byCode := make(map[int]string, len(labels))
		for _, l := range labels {
			byCode[l.Code] = l.Name
		}
		r.labels[set] = labels
		r.names[set] = byCode
	}
	return r
}

// LoadResolver reads every known label set from the store.
func (s *Store) LoadResolver(ctx context.Context) (*Resolver, error) {
	sets := map[model.LabelSet][]model.Label{}
	for _, set := range model.LabelSets() {
		labels, err := s.Labels(ctx, set)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s labels: %w", set, err)
		}
		sets[set] = labels
	}
	return NewResolver(sets), nil
}

// Labels returns the labels of a set ordered by code.
func (r *Resolver) Labels(set model.LabelSet) []model.Label {
	labels := r.labels[set]
	out := make([]model.Label, len(labels))
	copy(out, labels)
	return out
}

// Name resolves a code to its display name. Unknown codes resolve to "".
func (r *Resolver) Name(set model.LabelSet, code int) string {
	return r.names[set][code]
}
