// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Style selects the report layout.
type Style int

const (
	// StylePlain renders bracketed lowercase headers with inline percentages.
	StylePlain Style = 0
	// StyleTabular renders wiki sortable tables.
	StyleTabular Style = 1
)

// ParseStyle converts a numeric style code into a Style.
func ParseStyle(code int) (Style, error) {
	switch Style(code) {
	case StylePlain, StyleTabular:
		return Style(code), nil
	}
	return StylePlain, fmt.Errorf("unknown format %d (expected 0 or 1)", code)
}

// Options holds the finished run settings handed to the aggregation pass.
type Options struct {
	Style        Style
	ToplistLimit int
	Include      Include
	// Cutoff ignores records last modified longer ago than this. Zero disables it.
	Cutoff     time.Duration
	Extensions []string
}

// Entry is a single toplist row.
type Entry struct {
	Score int64
	Label string
}

// ClassLevels stores levels taken in one class.
type ClassLevels struct {
	Class  int `yaml:"class"`
	Levels int `yaml:"levels"`
}

// Record is one character as yielded by the record source.
type Record struct {
	FirstName       string        `yaml:"first_name"`
	LastName        string        `yaml:"last_name"`
	Gender          int           `yaml:"gender"`
	Race            int           `yaml:"race"`
	Subrace         int           `yaml:"subrace"`
	Background      int           `yaml:"background"`
	Deity           string        `yaml:"deity"`
	LawfulChaotic   int           `yaml:"lawful_chaotic"`
	GoodEvil        int           `yaml:"good_evil"`
	Tail            int           `yaml:"tail"`
	Wings           int           `yaml:"wings"`
	Classes         []ClassLevels `yaml:"classes"`
	Skills          map[int]int   `yaml:"skills"`
	Feats           []int         `yaml:"feats"`
	HitPoints       int64         `yaml:"hit_points"`
	ArmorClass      int64         `yaml:"armor_class"`
	BaseAttackBonus int64         `yaml:"base_attack_bonus"`
	Str             int64         `yaml:"str"`
	Dex             int64         `yaml:"dex"`
	Con             int64         `yaml:"con"`
	Int             int64         `yaml:"int"`
	Wis             int64         `yaml:"wis"`
	Cha             int64         `yaml:"cha"`
	FortSave        int64         `yaml:"fort_save"`
	ReflSave        int64         `yaml:"refl_save"`
	WillSave        int64         `yaml:"will_save"`
	Gold            int64         `yaml:"gold"`
	Experience      int64         `yaml:"experience"`
	Age             int64         `yaml:"age"`
	Inventory       []string      `yaml:"inventory"`

	// Filled from file metadata, not from the document.
	Player   string    `yaml:"-"`
	Path     string    `yaml:"-"`
	FileSize int64     `yaml:"-"`
	ModTime  time.Time `yaml:"-"`
}

// Label pairs a coded identifier with its display name.
type Label struct {
	Code int
	Name string
}

// LabelSet names a lookup table of the name resolver.
type LabelSet string

// Known label sets.
const (
	SetGender     LabelSet = "gender"
	SetRace       LabelSet = "race"
	SetSubrace    LabelSet = "subrace"
	SetBackground LabelSet = "background"
	SetClasses    LabelSet = "classes"
	SetSkills     LabelSet = "skills"
	SetFeats      LabelSet = "feats"
	SetTails      LabelSet = "tails"
	SetWings      LabelSet = "wings"
)

// LabelSets lists every label set in seeding order.
func LabelSets() []LabelSet {
	return []LabelSet{
		SetGender, SetRace, SetSubrace, SetBackground, SetClasses,
		SetSkills, SetFeats, SetTails, SetWings,
	}
}
