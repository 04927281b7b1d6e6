package domain

import (
	"encoding/json"
	"time"
)

type Source string

const (
	SourceStopwatch Source = "stopwatch"
	SourceManual    Source = "manual"
)

func (s Source) Valid() bool {
	return s == SourceStopwatch || s == SourceManual
}

// Draft is an unsaved candidate session.
type Draft struct {
	ID              string
	Source          Source
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	Chores          []string
}

// Session is a committed, immutable history record. XP and coins are one
// value: Reward. Both JSON fields are written from it.
type Session struct {
	ID                string
	Source            Source
	StartedAt         int64
	EndedAt           int64
	DateKey           string
	DurationSeconds   int
	Chores            []string
	Reward            int
	BonusXP           int
	Multiplier        float64
	RebirthMultiplier float64
	UsedGoldenGloves  bool
}

func (s Session) XP() int    { return s.Reward }
func (s Session) Coins() int { return s.Reward }

type sessionJSON struct {
	ID                string   `json:"id"`
	Source            Source   `json:"source"`
	StartedAt         int64    `json:"startedAt"`
	EndedAt           int64    `json:"endedAt"`
	DateKey           string   `json:"dateKey"`
	DurationSeconds   int      `json:"durationSeconds"`
	Chores            []string `json:"chores"`
	XP                int      `json:"xp"`
	Coins             int      `json:"coins"`
	BonusXP           int      `json:"bonusXP"`
	Multiplier        float64  `json:"multiplier"`
	RebirthMultiplier float64  `json:"rebirthMultiplier"`
	UsedGoldenGloves  bool     `json:"usedGoldenGloves"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	chores := s.Chores
	if chores == nil {
		chores = []string{}
	}
	return json.Marshal(sessionJSON{
		ID:                s.ID,
		Source:            s.Source,
		StartedAt:         s.StartedAt,
		EndedAt:           s.EndedAt,
		DateKey:           s.DateKey,
		DurationSeconds:   s.DurationSeconds,
		Chores:            chores,
		XP:                s.Reward,
		Coins:             s.Reward,
		BonusXP:           s.BonusXP,
		Multiplier:        s.Multiplier,
		RebirthMultiplier: s.RebirthMultiplier,
		UsedGoldenGloves:  s.UsedGoldenGloves,
	})
}
