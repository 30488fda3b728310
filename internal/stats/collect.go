// Package stats contains statistics accumulation and ranking.
package stats

import (
	"github.com/verte-zerg/svstats/internal/model"
)

// Resolver maps coded identifiers to display names.
type Resolver interface {
	Labels(set model.LabelSet) []model.Label
	Name(set model.LabelSet, code int) string
}

// Collector applies character records to the statistic table and toplists.
type Collector struct {
	include  model.Include
	resolver Resolver
	table    *Table
	tops     *Toplists

	skills       []model.Label
	skillMetrics map[int]model.Metric
}

// NewCollector builds a collector and seeds the table and skill toplists from
// the resolver, so every known label shows up even without occurrences.
func NewCollector(include model.Include, resolver Resolver, table *Table, tops *Toplists) *Collector {
	c := &Collector{
		include:      include,
		resolver:     resolver,
		table:        table,
		tops:         tops,
		skillMetrics: map[int]model.Metric{},
	}
	for _, cat := range model.Categories() {
		set := cat.LabelSet()
		if set == "" {
			continue
		}
		for _, l := range resolver.Labels(set) {
			table.Seed(cat, l.Name)
		}
	}
	if c.trackSkills() {
		c.skills = resolver.Labels(model.SetSkills)
		for _, l := range c.skills {
			c.skillMetrics[l.Code] = tops.SeedSkill(l.Name)
		}
	}
	return c
}

func (c *Collector) trackSkills() bool {
	return c.include.Category(model.Skills) || c.include.Toplist(model.TopSkills)
}

// Apply tallies one record.
func (c *Collector) Apply(rec model.Record) {
	c.applyCategories(rec)
	c.applyToplists(rec)
}

func (c *Collector) applyCategories(rec model.Record) {
	coded := []struct {
		cat  model.Category
		code int
	}{
		{model.Gender, rec.Gender},
		{model.Race, rec.Race},
		{model.Subrace, rec.Subrace},
		{model.Background, rec.Background},
		{model.Tails, rec.Tail},
		{model.Wings, rec.Wings},
	}
	for _, f := range coded {
		if c.include.Category(f.cat) {
			c.table.Increment(f.cat, c.resolver.Name(f.cat.LabelSet(), f.code))
		}
	}
	if c.include.Category(model.Deity) {
		c.table.Increment(model.Deity, rec.Deity)
	}
	if c.include.Category(model.Alignment) {
		c.table.Increment(model.Alignment, rec.Alignment())
	}

	if c.include.Category(model.Levels) {
		for _, cl := range rec.Classes {
			c.table.IncrementBy(model.Levels, c.resolver.Name(model.SetClasses, cl.Class), int64(cl.Levels))
		}
	}

	if c.trackSkills() {
		name := rec.FullName()
		for _, l := range c.skills {
			ranks := int64(rec.Skills[l.Code])
			if c.include.Category(model.Skills) {
				c.table.IncrementBy(model.Skills, l.Name, ranks)
			}
			if c.include.Toplist(model.TopSkills) {
				c.tops.Append(c.skillMetrics[l.Code], ranks, name)
			}
		}
	}

	if c.include.Category(model.Feats) {
		seen := map[int]bool{}
		for _, code := range rec.Feats {
			if seen[code] {
				continue
			}
			seen[code] = true
			if name := c.resolver.Name(model.SetFeats, code); name != "" {
				c.table.Increment(model.Feats, name)
			}
		}
	}
}

func (c *Collector) applyToplists(rec model.Record) {
	name := rec.FullName()
	add := func(t model.Toplist, metric model.Metric, score int64) {
		if c.include.Toplist(t) {
			c.tops.Append(metric, score, name)
		}
	}
	add(model.TopHealth, model.MetricHealth, rec.HitPoints)
	add(model.TopArmorClass, model.MetricArmorClass, rec.ArmorClass)
	add(model.TopBaseAttackBonus, model.MetricBaseAttackBonus, rec.BaseAttackBonus)
	add(model.TopAbilities, model.MetricStrength, rec.Str)
	add(model.TopAbilities, model.MetricDexterity, rec.Dex)
	add(model.TopAbilities, model.MetricConstitution, rec.Con)
	add(model.TopAbilities, model.MetricIntelligence, rec.Int)
	add(model.TopAbilities, model.MetricWisdom, rec.Wis)
	add(model.TopAbilities, model.MetricCharisma, rec.Cha)
	add(model.TopSaves, model.MetricFortSave, rec.FortSave)
	add(model.TopSaves, model.MetricReflSave, rec.ReflSave)
	add(model.TopSaves, model.MetricWillSave, rec.WillSave)
	add(model.TopWealth, model.MetricGold, rec.Gold)
	add(model.TopExperience, model.MetricExperience, rec.Experience)
	if c.include.Toplist(model.TopYoungest) || c.include.Toplist(model.TopOldest) {
		c.tops.Append(model.MetricAge, rec.Age, name)
	}
	add(model.TopItemCount, model.MetricItemCount, rec.ItemCount())
	add(model.TopFileSize, model.MetricFileSize, rec.FileSize)
}
