// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/svstats/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Settings   SettingsConfig  `toml:"settings"`
	Paths      PathsConfig     `toml:"paths"`
	Statistics map[string]bool `toml:"statistics"`
	Toplists   map[string]bool `toml:"toplists"`
	Exclude    ExcludeConfig   `toml:"exclude"`
	Logging    LoggingConfig   `toml:"logging"`
}

// SettingsConfig maps general run settings.
type SettingsConfig struct {
	RecentOnly *bool   `toml:"recent-only"`
	TopCount   *int    `toml:"top-count"`
	Format     *int    `toml:"format"`
	Output     *string `toml:"output"`
}

// PathsConfig maps input locations.
type PathsConfig struct {
	Servervault *string `toml:"servervault"`
	LabelsDB    *string `toml:"labels-db"`
}

// ExcludeConfig maps the staleness cutoff.
type ExcludeConfig struct {
	Days *float64 `toml:"days"`
}

// LoggingConfig maps logger settings.
type LoggingConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
	File   *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Include builds the inclusion set from the [statistics] and [toplists] tables.
// The "top" key of [statistics] is the master toplist switch. A config with
// neither table enables everything.
func (c FileConfig) Include() (model.Include, error) {
	if c.Statistics == nil && c.Toplists == nil {
		return model.IncludeAll(), nil
	}
	in := model.Include{
		Categories: map[model.Category]bool{},
		Toplists:   map[model.Toplist]bool{},
	}
	categories := map[string]model.Category{}
	for _, cat := range model.Categories() {
		categories[cat.Key()] = cat
	}
	for key, on := range c.Statistics {
		if key == "top" {
			in.Top = on
			continue
		}
		cat, ok := categories[key]
		if !ok {
			return model.Include{}, fmt.Errorf("unknown statistic %q", key)
		}
		in.Categories[cat] = on
	}
	toplists := map[string]model.Toplist{}
	for _, t := range model.Toplists() {
		toplists[t.Key()] = t
	}
	for key, on := range c.Toplists {
		t, ok := toplists[key]
		if !ok {
			return model.Include{}, fmt.Errorf("unknown toplist %q", key)
		}
		in.Toplists[t] = on
	}
	return in, nil
}
