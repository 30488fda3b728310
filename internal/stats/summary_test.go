package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, Summary{
		Counters:   Counters{Counted: 1234, Ignored: 5},
		Warnings:   2,
		Players:    40,
		BytesRead:  2048,
		ReportPath: "out.log",
		Elapsed:    1500 * time.Millisecond,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Summary\n")
	assert.Contains(t, out, "Counted   1,234\n")
	assert.Contains(t, out, "Ignored   5\n")
	assert.Contains(t, out, "Scanned   2.0 kB\n")
	assert.Contains(t, out, "Elapsed   1.5s\n")
	assert.Contains(t, out, "Report    out.log\n")
}
