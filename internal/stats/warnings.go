package stats

import "fmt"

// Warnings is an append-only list of diagnostics reported at the end of a run.
type Warnings struct {
	items []string
}

// Add appends a warning.
func (w *Warnings) Add(msg string) {
	w.items = append(w.items, msg)
}

// Addf appends a formatted warning.
func (w *Warnings) Addf(format string, args ...any) {
	w.Add(fmt.Sprintf(format, args...))
}

// All returns the warnings in insertion order.
func (w *Warnings) All() []string {
	out := make([]string, len(w.items))
	copy(out, w.items)
	return out
}

// Len returns the number of warnings.
func (w *Warnings) Len() int {
	return len(w.items)
}
