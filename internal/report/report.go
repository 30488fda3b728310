// Package report renders accumulated statistics into the text report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/svstats/internal/model"
	"github.com/verte-zerg/svstats/internal/stats"
)

// Options configures a Writer.
type Options struct {
	Style        model.Style
	ToplistLimit int
	Include      model.Include
}

// Writer streams a report to an underlying sink. The first write error sticks
// and is returned by every later call.
type Writer struct {
	out    *bufio.Writer
	opts   Options
	layout layout
	err    error
}

// New returns a Writer for w.
func New(w io.Writer, opts Options) *Writer {
	return &Writer{
		out:    bufio.NewWriter(w),
		opts:   opts,
		layout: layoutFor(opts.Style),
	}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) print(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.out.WriteString(s)
}

func (w *Writer) header(title string) {
	if w.opts.Style == model.StylePlain {
		title = strings.ToLower(title)
	}
	w.printf(w.layout.sectionHead, title)
}

// RenderStatistics writes one section per enabled category in declared order.
func (w *Writer) RenderStatistics(table *stats.Table, totalCounted int64) error {
	if !w.opts.Include.AnyCategory() {
		return w.err
	}
	w.print(w.layout.statisticsHead)
	for _, cat := range model.Categories() {
		if !w.opts.Include.Category(cat) {
			continue
		}
		w.header(cat.Title())
		w.printf(w.layout.statisticColumns, cat.Title())
		for _, row := range table.Rows(cat) {
			pct := stats.Percent(row.Count, totalCounted)
			if w.opts.Style == model.StyleTabular {
				w.printf(w.layout.statisticRow, row.Label, row.Count, pct)
			} else {
				w.printf(w.layout.statisticRow, row.Count, row.Label, pct)
			}
		}
		w.print(w.layout.sectionFoot)
	}
	return w.err
}

// RenderToplists writes one section per enabled toplist in declared order.
func (w *Writer) RenderToplists(tops *stats.Toplists) error {
	if !w.opts.Include.Top {
		return w.err
	}
	w.print(w.layout.toplistsHead)
	if w.opts.ToplistLimit <= 0 {
		return w.err
	}
	skills := tops.Skills()
	for _, t := range model.Toplists() {
		if !w.opts.Include.Toplist(t) {
			continue
		}
		for _, sec := range t.Sections(skills) {
			w.header(sec.Title)
			w.printf(w.layout.toplistColumns, sec.Title)
			for _, e := range tops.Render(sec.Metric, w.opts.ToplistLimit, sec.Reverse) {
				w.printf(w.layout.toplistRow, e.Score, e.Label)
			}
			w.print(w.layout.sectionFoot)
		}
	}
	return w.err
}

// RenderWarnings writes the warning log in insertion order.
func (w *Writer) RenderWarnings(warnings *stats.Warnings) error {
	w.print("\n\nErrors / Warnings:")
	for _, msg := range warnings.All() {
		w.print("\n" + msg)
	}
	return w.err
}

// Flush writes buffered output to the sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.out.Flush()
	return w.err
}

// Write renders the full report: statistics, toplists, then warnings.
func (w *Writer) Write(table *stats.Table, tops *stats.Toplists, warnings *stats.Warnings, counters stats.Counters) error {
	if err := w.RenderStatistics(table, counters.Counted); err != nil {
		return fmt.Errorf("write statistics: %w", err)
	}
	if err := w.RenderToplists(tops); err != nil {
		return fmt.Errorf("write toplists: %w", err)
	}
	if err := w.RenderWarnings(warnings); err != nil {
		return fmt.Errorf("write warnings: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
