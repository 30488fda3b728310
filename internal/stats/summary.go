package stats

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

var summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

// Summary describes a finished run for the terminal.
type Summary struct {
	Counters   Counters
	Warnings   int
	Players    int
	BytesRead  int64
	ReportPath string
	Elapsed    time.Duration
}

// RenderSummary prints a short run summary table.
func RenderSummary(w io.Writer, s Summary) error {
	title := "Summary"
	if shouldUseColor(w) {
		title = summaryTitleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	rows := [][]string{
		{"Players", fmt.Sprintf("%d", s.Players)},
		{"Counted", humanize.Comma(s.Counters.Counted)},
		{"Ignored", humanize.Comma(s.Counters.Ignored)},
		{"Warnings", fmt.Sprintf("%d", s.Warnings)},
		{"Scanned", humanize.Bytes(uint64(max(s.BytesRead, 0)))},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
		{"Report", s.ReportPath},
	}
	for _, line := range formatTable(nil, rows, map[int]bool{}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
