// Package scan walks a servervault directory and aggregates its characters.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/svstats/internal/model"
	"github.com/verte-zerg/svstats/internal/stats"
)

// DefaultExtensions are the accepted character file extensions.
var DefaultExtensions = []string{".yml", ".yaml"}

// Loader reads one character file.
type Loader func(path string) (model.Record, error)

// Result holds everything accumulated by a run.
type Result struct {
	Table     *stats.Table
	Toplists  *stats.Toplists
	Warnings  *stats.Warnings
	Counters  stats.Counters
	Players   int
	BytesRead int64
}

// Scanner aggregates one servervault.
type Scanner struct {
	opts     model.Options
	resolver stats.Resolver
	load     Loader
	log      *slog.Logger
	now      func() time.Time
}

// New returns a Scanner.
func New(opts model.Options, resolver stats.Resolver, load Loader, logger *slog.Logger) *Scanner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	return &Scanner{
		opts:     opts,
		resolver: resolver,
		load:     load,
		log:      logger,
		now:      time.Now,
	}
}

// Run reads root/<player>/<character> and returns the accumulated state.
// Toplists are compacted after each player directory.
func (s *Scanner) Run(ctx context.Context, root string) (Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("servervault: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("servervault %s is not a directory", root)
	}
	players, err := os.ReadDir(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read servervault: %w", err)
	}

	res := Result{
		Table:    stats.NewTable(),
		Toplists: stats.NewToplists(),
		Warnings: &stats.Warnings{},
	}
	collector := stats.NewCollector(s.opts.Include, s.resolver, res.Table, res.Toplists)
	now := s.now()

	for _, player := range players {
		if !player.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Players++
		dir := filepath.Join(root, player.Name())
		s.scanPlayer(dir, collector, &res, now)
		res.Toplists.CompactAll(s.opts.ToplistLimit)
	}
	return res, nil
}

func (s *Scanner) scanPlayer(dir string, collector *stats.Collector, res *Result, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.warn(res, fmt.Sprintf("%s : %v", dir, err))
		return
	}
	s.log.Debug("scanning player", "dir", dir, "files", len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			s.warn(res, fmt.Sprintf("%s : %v", path, err))
			continue
		}
		if info.Size() == 0 {
			s.warn(res, "Zero-size file: "+path)
			continue
		}
		if !s.accepts(entry.Name()) {
			continue
		}
		rec, err := s.load(path)
		if err != nil {
			s.warn(res, fmt.Sprintf("%s : %v", path, err))
			continue
		}
		if s.opts.Cutoff > 0 && now.Sub(rec.ModTime) > s.opts.Cutoff {
			res.Counters.Ignored++
			continue
		}
		collector.Apply(rec)
		res.Counters.Counted++
		res.BytesRead += info.Size()
	}
}

func (s *Scanner) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range s.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func (s *Scanner) warn(res *Result, msg string) {
	res.Warnings.Add(msg)
	s.log.Warn(msg)
}
