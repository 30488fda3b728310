package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/svstats/internal/model"
)

func TestRenderSkipsZeroAndCapsAtLimitPlusOne(t *testing.T) {
	tops := NewToplists()
	tops.Append(model.MetricHealth, 50, "A")
	tops.Append(model.MetricHealth, 10, "B")
	tops.Append(model.MetricHealth, 0, "C")
	tops.Append(model.MetricHealth, 80, "D")

	got := tops.Render(model.MetricHealth, 1, false)
	assert.Equal(t, []model.Entry{{Score: 80, Label: "D"}, {Score: 50, Label: "A"}}, got)
}

func TestRenderZeroScoresDoNotCountTowardLimit(t *testing.T) {
	tops := NewToplists()
	tops.Append(model.MetricAge, 0, "zero1")
	tops.Append(model.MetricAge, 0, "zero2")
	tops.Append(model.MetricAge, 30, "a")
	tops.Append(model.MetricAge, 20, "b")
	tops.Append(model.MetricAge, 10, "c")

	got := tops.Render(model.MetricAge, 1, true)
	assert.Equal(t, []model.Entry{{Score: 10, Label: "c"}, {Score: 20, Label: "b"}}, got)
}

func TestRenderReverseIsMirror(t *testing.T) {
	tops := NewToplists()
	for i, score := range []int64{5, 0, 17, 3, 9, 0, 12} {
		tops.Append(model.MetricAge, score, string(rune('a'+i)))
	}

	desc := tops.Render(model.MetricAge, 10, false)
	asc := tops.Render(model.MetricAge, 10, true)
	require.Len(t, desc, 5)
	require.Len(t, asc, 5)
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}
}

func TestRenderIsStableForTies(t *testing.T) {
	tops := NewToplists()
	tops.Append(model.MetricGold, 100, "first")
	tops.Append(model.MetricGold, 100, "second")
	tops.Append(model.MetricGold, 100, "third")

	got := tops.Render(model.MetricGold, 5, false)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Label)
	assert.Equal(t, "second", got[1].Label)
	assert.Equal(t, "third", got[2].Label)
}

func TestRenderUnknownMetric(t *testing.T) {
	tops := NewToplists()
	assert.Empty(t, tops.Render(model.MetricGold, 5, false))
}

func TestCompactKeepsBothExtremes(t *testing.T) {
	tops := NewToplists()
	for i := int64(1); i <= 30; i++ {
		tops.Append(model.MetricExperience, i, "")
	}
	tops.Compact(model.MetricExperience, 5)
	require.Equal(t, 12, tops.Len(model.MetricExperience))

	top := tops.Render(model.MetricExperience, 5, false)
	require.Len(t, top, 6)
	assert.Equal(t, int64(30), top[0].Score)
	assert.Equal(t, int64(25), top[5].Score)

	bottom := tops.Render(model.MetricExperience, 5, true)
	require.Len(t, bottom, 6)
	assert.Equal(t, int64(1), bottom[0].Score)
	assert.Equal(t, int64(6), bottom[5].Score)
}

func TestCompactBelowThresholdIsNoop(t *testing.T) {
	tops := NewToplists()
	for i := int64(0); i < 11; i++ {
		tops.Append(model.MetricGold, i, "")
	}
	tops.Compact(model.MetricGold, 5)
	assert.Equal(t, 11, tops.Len(model.MetricGold))

	tops.Append(model.MetricGold, 99, "")
	tops.Compact(model.MetricGold, 5)
	assert.Equal(t, 12, tops.Len(model.MetricGold))
}

func TestCompactMatchesFullRanking(t *testing.T) {
	scores := []int64{42, 7, 7, 99, 3, 15, 15, 15, 61, 2, 28, 5, 77, 12, 8, 50, 1, 33}
	const limit = 2

	full := NewToplists()
	compacted := NewToplists()
	for i, s := range scores {
		label := string(rune('a' + i))
		full.Append(model.MetricHealth, s, label)
		compacted.Append(model.MetricHealth, s, label)
		if i%4 == 3 {
			compacted.CompactAll(limit)
		}
	}
	compacted.CompactAll(limit)

	assert.Equal(t, full.Render(model.MetricHealth, limit, false), compacted.Render(model.MetricHealth, limit, false))
	assert.Equal(t, full.Render(model.MetricHealth, limit, true), compacted.Render(model.MetricHealth, limit, true))
}

func TestSeedSkillRegistersInOrder(t *testing.T) {
	tops := NewToplists()
	hide := tops.SeedSkill("Hide")
	lore := tops.SeedSkill("Lore")
	tops.SeedSkill("Hide")

	assert.Equal(t, model.Metric("Skill: Hide"), hide)
	assert.Equal(t, []model.Metric{hide, lore}, tops.Skills())
	assert.True(t, tops.IsSkill(lore))
	assert.False(t, tops.IsSkill(model.MetricHealth))
}
