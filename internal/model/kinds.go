package model

// Category is a classification dimension tracked by the statistic table.
type Category int

// Categories in render order.
const (
	Gender Category = iota
	Race
	Subrace
	Background
	Alignment
	Deity
	Levels
	Skills
	Feats
	Tails
	Wings
)

type categoryInfo struct {
	key   string
	title string
	set   LabelSet
}

var categoryInfos = [...]categoryInfo{
	Gender:     {key: "gender", title: "Gender", set: SetGender},
	Race:       {key: "race", title: "Race", set: SetRace},
	Subrace:    {key: "subrace", title: "Subrace", set: SetSubrace},
	Background: {key: "background", title: "Background", set: SetBackground},
	Alignment:  {key: "alignment", title: "Alignment"},
	Deity:      {key: "deity", title: "Deity"},
	Levels:     {key: "levels", title: "Class", set: SetClasses},
	Skills:     {key: "skills", title: "Skill", set: SetSkills},
	Feats:      {key: "feats", title: "Feat", set: SetFeats},
	Tails:      {key: "tails", title: "Tail", set: SetTails},
	Wings:      {key: "wings", title: "Wing", set: SetWings},
}

// Categories returns all categories in render order.
func Categories() []Category {
	out := make([]Category, len(categoryInfos))
	for i := range categoryInfos {
		out[i] = Category(i)
	}
	return out
}

// Key returns the configuration key of the category.
func (c Category) Key() string {
	return categoryInfos[c].key
}

// Title returns the section title of the category.
func (c Category) Title() string {
	return categoryInfos[c].title
}

// LabelSet returns the resolver table that seeds the category, or "" for free text.
func (c Category) LabelSet() LabelSet {
	return categoryInfos[c].set
}

func (c Category) String() string {
	return c.Key()
}

// Metric names a toplist in the toplist store.
type Metric string

// Built-in metrics.
const (
	MetricHealth          Metric = "health"
	MetricArmorClass      Metric = "armorclass"
	MetricBaseAttackBonus Metric = "baseattackbonus"
	MetricStrength        Metric = "strength"
	MetricDexterity       Metric = "dexterity"
	MetricConstitution    Metric = "constitution"
	MetricIntelligence    Metric = "intelligence"
	MetricWisdom          Metric = "wisdom"
	MetricCharisma        Metric = "charisma"
	MetricFortSave        Metric = "save-fort"
	MetricReflSave        Metric = "save-refl"
	MetricWillSave        Metric = "save-will"
	MetricExperience      Metric = "experience"
	MetricGold            Metric = "gold"
	MetricAge             Metric = "age"
	MetricItemCount       Metric = "itemcount"
	MetricFileSize        Metric = "filesize"
)

// SkillMetric returns the metric name of a per-skill toplist.
func SkillMetric(skill string) Metric {
	return Metric("Skill: " + skill)
}

// Section is one rendered toplist.
type Section struct {
	Title   string
	Metric  Metric
	Reverse bool
}

// Toplist is a toplist switch of the configuration.
type Toplist int

// Toplists in render order.
const (
	TopHealth Toplist = iota
	TopArmorClass
	TopBaseAttackBonus
	TopAbilities
	TopSkills
	TopSaves
	TopExperience
	TopWealth
	TopYoungest
	TopOldest
	TopItemCount
	TopFileSize
)

type toplistInfo struct {
	key      string
	sections []Section
}

var toplistInfos = [...]toplistInfo{
	TopHealth:          {key: "health", sections: []Section{{Title: "Health", Metric: MetricHealth}}},
	TopArmorClass:      {key: "armorclass", sections: []Section{{Title: "Armor Class", Metric: MetricArmorClass}}},
	TopBaseAttackBonus: {key: "baseattackbonus", sections: []Section{{Title: "Base Attack Bonus", Metric: MetricBaseAttackBonus}}},
	TopAbilities: {key: "abilities", sections: []Section{
		{Title: "Strength", Metric: MetricStrength},
		{Title: "Dexterity", Metric: MetricDexterity},
		{Title: "Constitution", Metric: MetricConstitution},
		{Title: "Intelligence", Metric: MetricIntelligence},
		{Title: "Wisdom", Metric: MetricWisdom},
		{Title: "Charisma", Metric: MetricCharisma},
	}},
	TopSkills: {key: "skills"},
	TopSaves: {key: "saves", sections: []Section{
		{Title: "Fort Save", Metric: MetricFortSave},
		{Title: "Refl Save", Metric: MetricReflSave},
		{Title: "Will Save", Metric: MetricWillSave},
	}},
	TopExperience: {key: "experience", sections: []Section{{Title: "Experience", Metric: MetricExperience}}},
	TopWealth:     {key: "wealth", sections: []Section{{Title: "Wealth", Metric: MetricGold}}},
	TopYoungest:   {key: "youngest", sections: []Section{{Title: "Youngest", Metric: MetricAge, Reverse: true}}},
	TopOldest:     {key: "oldest", sections: []Section{{Title: "Oldest", Metric: MetricAge}}},
	TopItemCount:  {key: "itemcount", sections: []Section{{Title: "Inventory Size", Metric: MetricItemCount}}},
	TopFileSize:   {key: "filesize", sections: []Section{{Title: "File Size", Metric: MetricFileSize}}},
}

// Toplists returns all toplist switches in render order.
func Toplists() []Toplist {
	out := make([]Toplist, len(toplistInfos))
	for i := range toplistInfos {
		out[i] = Toplist(i)
	}
	return out
}

// Key returns the configuration key of the toplist.
func (t Toplist) Key() string {
	return toplistInfos[t].key
}

// Sections expands the toplist into rendered sections. The skill toplist expands
// to one section per skill metric passed in.
func (t Toplist) Sections(skills []Metric) []Section {
	if t == TopSkills {
		out := make([]Section, 0, len(skills))
		for _, m := range skills {
			out = append(out, Section{Title: string(m), Metric: m})
		}
		return out
	}
	return toplistInfos[t].sections
}

func (t Toplist) String() string {
	return t.Key()
}

// Include is the set of enabled statistics and toplists.
type Include struct {
	Categories map[Category]bool
	Top        bool
	Toplists   map[Toplist]bool
}

// Category reports whether the statistic is enabled.
func (in Include) Category(c Category) bool {
	return in.Categories[c]
}

// Toplist reports whether the toplist is enabled. The master switch gates all of them.
func (in Include) Toplist(t Toplist) bool {
	return in.Top && in.Toplists[t]
}

// AnyCategory reports whether at least one statistic is enabled.
func (in Include) AnyCategory() bool {
	for _, on := range in.Categories {
		if on {
			return true
		}
	}
	return false
}

// IncludeAll enables every statistic and toplist.
func IncludeAll() Include {
	in := Include{
		Categories: map[Category]bool{},
		Top:        true,
		Toplists:   map[Toplist]bool{},
	}
	for _, c := range Categories() {
		in.Categories[c] = true
	}
	for _, t := range Toplists() {
		in.Toplists[t] = true
	}
	return in
}
