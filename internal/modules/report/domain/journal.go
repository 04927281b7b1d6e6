package domain

import "time"

const SchemaVersion = 1

// SessionRecord is a committed session as written to the journal.
type SessionRecord struct {
	ID               string
	Source           string
	StartedAt        time.Time
	EndedAt          time.Time
	DurationSeconds  int
	Chores           []string
	XP               int
	Coins            int
	BonusXP          int
	Multiplier       float64
	UsedGoldenGloves bool
}

// WeekSummary is one week of totals as written to the journal.
type WeekSummary struct {
	WeekKey string
	Label   string
	Totals  Totals
	Top     Stat
}
