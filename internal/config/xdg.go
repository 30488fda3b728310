// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// DefaultReportName is the fixed file name of the rendered report.
const DefaultReportName = "ServervaultStatistics.log"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultLabelsDBPath returns the default path for the SQLite label database.
func DefaultLabelsDBPath() string {
	return filepath.Join(XDGDataHome(), "svstats", "labels.db")
}

// DefaultLogPath returns the default path for the rotating log file.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), "svstats", "svstats.log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "svstats", "config.toml")
}
