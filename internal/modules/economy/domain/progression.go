package domain

import (
	"time"

	apperrors "chorely/internal/platform/errors"
)

const (
	XPPerLevel = 250
	MaxLevel   = 10
)

// Level is capped at MaxLevel while XP keeps accumulating.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return min(totalXP/XPPerLevel+1, MaxLevel)
}

type LevelProgress struct {
	Level       int
	XPIntoLevel int
	XPPerLevel  int
	Max         bool
}

func (p LevelProgress) Fraction() float64 {
	if p.Max {
		return 1
	}
	return float64(p.XPIntoLevel) / float64(p.XPPerLevel)
}

func ProgressFor(totalXP int) LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := Level(totalXP)
	return LevelProgress{
		Level:       level,
		XPIntoLevel: totalXP % XPPerLevel,
		XPPerLevel:  XPPerLevel,
		Max:         level >= MaxLevel,
	}
}

func CanRebirth(st State) bool {
	return Level(st.TotalXP) >= MaxLevel && st.TotalCoins >= CostRebirth
}

func Rebirth(st State, now time.Time) (State, error) {
	if Level(st.TotalXP) < MaxLevel {
		return st, apperrors.ErrRebirthLocked
	}
	next, err := SpendCoins(st, CostRebirth)
	if err != nil {
		return st, err
	}
	next.TotalXP = 0
	next.Rebirths++
	next = next.appendPurchase(Purchase{
		ItemID:    ItemRebirth,
		At:        now.UnixMilli(),
		CostCoins: CostRebirth,
	})
	return next, nil
}
