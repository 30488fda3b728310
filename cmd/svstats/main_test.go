package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/svstats/internal/config"
	"github.com/verte-zerg/svstats/internal/model"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	include, err := cfg.Include()
	require.NoError(t, err)
	assert.Equal(t, model.IncludeAll(), include)
}

func TestReportEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "missing.toml")
	dbPath := filepath.Join(dir, "labels.db")
	labelsPath := filepath.Join(dir, "labels.toml")
	vault := filepath.Join(dir, "servervault")
	out := filepath.Join(dir, "report.log")

	require.NoError(t, os.WriteFile(labelsPath, []byte(`[labels]
gender = ["Male", "Female"]
race = ["Dwarf", "Elf", "Human"]
`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(vault, "alice"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(vault, "alice", "ann.yml"), []byte("first_name: Ann\ngender: 1\nrace: 1\nhit_points: 40\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(vault, "alice", "bo.yml"), []byte("first_name: Bo\ngender: 0\nrace: 2\nhit_points: 90\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(vault, "alice", "empty.yml"), nil, 0o644))

	var stdout, stderr bytes.Buffer
	importCmd := newRootCmd()
	importCmd.SetOut(&stdout)
	importCmd.SetErr(&stderr)
	importCmd.SetArgs([]string{"labels", "import", labelsPath, "--config", cfgPath, "--labels-db", dbPath})
	require.NoError(t, importCmd.Execute())
	assert.Contains(t, stdout.String(), "imported gender (2)")
	assert.Contains(t, stdout.String(), "imported race (3)")

	stdout.Reset()
	runCmd := newRootCmd()
	runCmd.SetOut(&stdout)
	runCmd.SetErr(&stderr)
	runCmd.SetArgs([]string{
		"--config", cfgPath,
		"--labels-db", dbPath,
		"--servervault", vault,
		"--output", out,
		"--top-count", "3",
	})
	require.NoError(t, runCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	report := string(data)
	assert.True(t, strings.HasPrefix(report, "\nStatistics:\n[gender]\n"), report)
	assert.Contains(t, report, "1 - Female (50.00%)\n1 - Male (50.00%)\n")
	assert.Contains(t, report, "[race]\n1 - Elf (50.00%)\n1 - Human (50.00%)\n")
	assert.Contains(t, report, "[health]\n90 - Bo\n40 - Ann\n")
	assert.True(t, strings.HasSuffix(report, "\n\nErrors / Warnings:\nZero-size file: "+filepath.Join(vault, "alice", "empty.yml")), report)
	assert.Contains(t, stdout.String(), "Counted   2")
}

func TestValidateConfig(t *testing.T) {
	prevVault, prevTop, prevOut := runServervault, runTopCount, runOutput
	t.Cleanup(func() {
		runServervault, runTopCount, runOutput = prevVault, prevTop, prevOut
	})

	runServervault, runTopCount, runOutput = "", 10, "out.log"
	assert.ErrorContains(t, validateConfig(), "--servervault")

	runServervault, runTopCount = "/vault", -1
	assert.ErrorContains(t, validateConfig(), "--top-count")

	runTopCount = 3
	assert.NoError(t, validateConfig())
}
