package model

import "strings"

const (
	alignHigh = 70
	alignLow  = 30
)

// FullName joins the first and last name.
func (r Record) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// Alignment derives the display alignment from the two alignment axes (0-100).
func (r Record) Alignment() string {
	law := "Neutral"
	switch {
	case r.LawfulChaotic >= alignHigh:
		law = "Lawful"
	case r.LawfulChaotic <= alignLow:
		law = "Chaotic"
	}
	good := "Neutral"
	switch {
	case r.GoodEvil >= alignHigh:
		good = "Good"
	case r.GoodEvil <= alignLow:
		good = "Evil"
	}
	if law == "Neutral" && good == "Neutral" {
		return "True Neutral"
	}
	return law + " " + good
}

// ItemCount returns the inventory size.
func (r Record) ItemCount() int64 {
	return int64(len(r.Inventory))
}
