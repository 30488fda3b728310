package store

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/svstats/internal/model"
)

// LabelFile is the TOML import format. Each list position is the code.
//
//	[labels]
//	gender = ["Male", "Female"]
type LabelFile struct {
	Labels map[string][]string `toml:"labels"`
}

// LoadLabelFile reads label sets from a TOML file.
func LoadLabelFile(path string) (map[model.LabelSet][]string, error) {
	var file LabelFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode label file: %w", err)
	}
	known := map[model.LabelSet]bool{}
	for _, set := range model.LabelSets() {
		known[set] = true
	}
	out := make(map[model.LabelSet][]string, len(file.Labels))
	for key, names := range file.Labels {
		set := model.LabelSet(key)
		if !known[set] {
			return nil, fmt.Errorf("unknown label set %q", key)
		}
		out[set] = names
	}
	return out, nil
}
