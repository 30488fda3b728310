package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/svstats/internal/model"
)

func TestTableSeedIsIdempotent(t *testing.T) {
	table := NewTable()
	table.Seed(model.Race, "Elf")
	table.Increment(model.Race, "Elf")
	table.Seed(model.Race, "Elf")
	table.Seed(model.Race, "Elf")

	n, ok := table.Count(model.Race, "Elf")
	require.True(t, ok)
	assert.Equal(t, int64(1), n)
}

func TestTableIncrementCreatesUnseededLabel(t *testing.T) {
	table := NewTable()
	table.Increment(model.Deity, "Tyr")
	table.Increment(model.Deity, "Tyr")

	n, ok := table.Count(model.Deity, "Tyr")
	require.True(t, ok)
	assert.Equal(t, int64(2), n)

	_, ok = table.Count(model.Deity, "Lathander")
	assert.False(t, ok)
}

func TestTableIncrementBy(t *testing.T) {
	table := NewTable()
	table.Seed(model.Levels, "Fighter")
	table.IncrementBy(model.Levels, "Fighter", 12)
	table.IncrementBy(model.Levels, "Fighter", 3)
	table.IncrementBy(model.Levels, "Fighter", -5)

	n, _ := table.Count(model.Levels, "Fighter")
	assert.Equal(t, int64(15), n)
}

func TestTableRowsSkipZeroAndEmpty(t *testing.T) {
	table := NewTable()
	table.Seed(model.Gender, "Male")
	table.Seed(model.Gender, "Female")
	table.Seed(model.Gender, "Other")
	table.IncrementBy(model.Gender, "Male", 7)
	table.IncrementBy(model.Gender, "Female", 3)
	table.IncrementBy(model.Gender, "", 2)

	rows := table.Rows(model.Gender)
	assert.Equal(t, []LabelCount{
		{Label: "Male", Count: 7},
		{Label: "Female", Count: 3},
	}, rows)

	assert.Len(t, table.Labels(model.Gender), 4)
}

func TestTableRowsTieBreakByLabel(t *testing.T) {
	table := NewTable()
	table.IncrementBy(model.Race, "Human", 2)
	table.IncrementBy(model.Race, "Dwarf", 2)
	table.IncrementBy(model.Race, "Elf", 5)

	rows := table.Rows(model.Race)
	require.Len(t, rows, 3)
	assert.Equal(t, "Elf", rows[0].Label)
	assert.Equal(t, "Dwarf", rows[1].Label)
	assert.Equal(t, "Human", rows[2].Label)
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 70.0, Percent(7, 10), 1e-9)
	assert.Equal(t, 0.0, Percent(7, 0))
}

func TestPercentSumMatchesCountedShare(t *testing.T) {
	table := NewTable()
	counts := map[string]int64{"Elf": 3, "Human": 11, "Dwarf": 5, "Orc": 0}
	var sum int64
	for label, n := range counts {
		table.Seed(model.Race, label)
		table.IncrementBy(model.Race, label, n)
		sum += n
	}
	const total = 40
	var pct float64
	for _, row := range table.Rows(model.Race) {
		pct += Percent(row.Count, total)
	}
	assert.InDelta(t, 100*float64(sum)/total, pct, 0.01)
}
