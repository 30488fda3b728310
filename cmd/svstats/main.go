// Package main provides the CLI entrypoint for svstats.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/svstats/internal/config"
	"github.com/verte-zerg/svstats/internal/logging"
	"github.com/verte-zerg/svstats/internal/model"
	"github.com/verte-zerg/svstats/internal/report"
	"github.com/verte-zerg/svstats/internal/scan"
	"github.com/verte-zerg/svstats/internal/source"
	"github.com/verte-zerg/svstats/internal/stats"
	"github.com/verte-zerg/svstats/internal/store"
)

const (
	defaultTopCount = 10
	defaultFormat   = 0
	defaultDays     = 30.0
	hoursPerDay     = 24
)

var (
	configPath     string
	runServervault string
	runLabelsDB    string
	runOutput      string
	runFormat      int
	runTopCount    int
	runRecentOnly  bool
	runDays        float64
	runLogLevel    string
	runLogFormat   string
	runLogFile     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "svstats",
		Short:         "Servervault population statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runReportCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&runLabelsDB, "labels-db", config.DefaultLabelsDBPath(), "label database path")
	rootCmd.Flags().StringVar(&runServervault, "servervault", "", "servervault directory (one sub-directory per player)")
	rootCmd.Flags().StringVar(&runOutput, "output", config.DefaultReportName, "report file")
	rootCmd.Flags().IntVar(&runFormat, "format", defaultFormat, "report style: 0 plain, 1 wiki table")
	rootCmd.Flags().IntVar(&runTopCount, "top-count", defaultTopCount, "toplist size")
	rootCmd.Flags().BoolVar(&runRecentOnly, "recent-only", false, "skip characters older than --days")
	rootCmd.Flags().Float64Var(&runDays, "days", defaultDays, "staleness cutoff in days")
	rootCmd.Flags().StringVar(&runLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&runLogFormat, "log-format", logging.FormatText, "log format (text, json)")
	rootCmd.Flags().StringVar(&runLogFile, "log-file", "", "also write logs to this rotating file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLabelsCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "servervault", &runServervault, fileCfg.Paths.Servervault)
	applyStringConfig(cmd, "labels-db", &runLabelsDB, fileCfg.Paths.LabelsDB)
	applyStringConfig(cmd, "output", &runOutput, fileCfg.Settings.Output)
	applyIntConfig(cmd, "format", &runFormat, fileCfg.Settings.Format)
	applyIntConfig(cmd, "top-count", &runTopCount, fileCfg.Settings.TopCount)
	applyBoolConfig(cmd, "recent-only", &runRecentOnly, fileCfg.Settings.RecentOnly)
	applyFloatConfig(cmd, "days", &runDays, fileCfg.Exclude.Days)
	applyStringConfig(cmd, "log-level", &runLogLevel, fileCfg.Logging.Level)
	applyStringConfig(cmd, "log-format", &runLogFormat, fileCfg.Logging.Format)
	applyStringConfig(cmd, "log-file", &runLogFile, fileCfg.Logging.File)

	opts, err := buildOptions(fileCfg)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(logging.Config{
		Level:  runLogLevel,
		Format: runLogFormat,
		File:   runLogFile,
	}, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	started := time.Now()

	logger.Info("loading labels", "db", runLabelsDB)
	resolver, err := loadResolver(ctx, runLabelsDB)
	if err != nil {
		return err
	}

	logger.Info("gathering character data", "servervault", runServervault)
	res, err := scan.New(opts, resolver, source.Load, logger).Run(ctx, runServervault)
	if err != nil {
		return fmt.Errorf("failed to scan servervault: %w", err)
	}

	logger.Info("writing statistics", "output", runOutput, "counted", res.Counters.Counted, "ignored", res.Counters.Ignored)
	if err := writeReport(runOutput, opts, res); err != nil {
		return err
	}

	return stats.RenderSummary(cmd.OutOrStdout(), stats.Summary{
		Counters:   res.Counters,
		Warnings:   res.Warnings.Len(),
		Players:    res.Players,
		BytesRead:  res.BytesRead,
		ReportPath: runOutput,
		Elapsed:    time.Since(started),
	})
}

func buildOptions(fileCfg config.FileConfig) (model.Options, error) {
	if err := validateConfig(); err != nil {
		return model.Options{}, err
	}
	style, err := model.ParseStyle(runFormat)
	if err != nil {
		return model.Options{}, fmt.Errorf("--format: %w", err)
	}
	include, err := fileCfg.Include()
	if err != nil {
		return model.Options{}, fmt.Errorf("invalid config: %w", err)
	}
	opts := model.Options{
		Style:        style,
		ToplistLimit: runTopCount,
		Include:      include,
		Extensions:   scan.DefaultExtensions,
	}
	if runRecentOnly {
		opts.Cutoff = time.Duration(runDays * hoursPerDay * float64(time.Hour))
	}
	return opts, nil
}

func loadResolver(ctx context.Context, path string) (*store.Resolver, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open label db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close label db: %v\n", cerr)
		}
	}()
	resolver, err := st.LoadResolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return resolver, nil
}

func writeReport(path string, opts model.Options, res scan.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	w := report.New(file, report.Options{
		Style:        opts.Style,
		ToplistLimit: opts.ToplistLimit,
		Include:      opts.Include,
	})
	if err := w.Write(res.Table, res.Toplists, res.Warnings, res.Counters); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig() error {
	if strings.TrimSpace(runServervault) == "" {
		return fmt.Errorf("--servervault must be set (flag or [paths] servervault)")
	}
	if runTopCount < 0 {
		return fmt.Errorf("--top-count must be >= 0")
	}
	if runRecentOnly && runDays < 0 {
		return fmt.Errorf("--days must be >= 0")
	}
	if strings.TrimSpace(runOutput) == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}

func defaultConfigTemplate() string {
	var b strings.Builder
	fmt.Fprintf(&b, `# svstats configuration
# Uncomment a value to enable it. CLI flags override config values.

[settings]
# recent-only = false     # Skip characters older than [exclude] days
# top-count = %d          # Entries per toplist
# format = %d              # 0 plain, 1 wiki table
# output = %q

[paths]
# servervault = "/srv/nwn2/servervault"
# labels-db = %q

[exclude]
# days = %.0f

[logging]
# level = "info"
# format = "text"
# file = ""

# Omit both tables below to enable everything.
[statistics]
top = true
`, defaultTopCount, defaultFormat, config.DefaultReportName, config.DefaultLabelsDBPath(), defaultDays)
	for _, cat := range model.Categories() {
		fmt.Fprintf(&b, "%s = true\n", cat.Key())
	}
	b.WriteString("\n[toplists]\n")
	for _, t := range model.Toplists() {
		fmt.Fprintf(&b, "%s = true\n", t.Key())
	}
	return b.String()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
