package domain

import (
	"math"
	"time"

	"chorely/internal/platform/clock"
)

const (
	XPPerChore            = 10
	DailyBonusXP          = 20
	RebirthMultiplierStep = 0.25
	GoldenGlovesFactor    = 2
)

// Rewards is the full breakdown for one session. Amount is both the XP and
// the coins earned.
type Rewards struct {
	MinutesForXP      int
	ChoreXP           int
	TimeXP            int
	BonusXP           int
	BaseXP            int
	Multiplier        float64
	RebirthMultiplier float64
	UsedGoldenGloves  bool
	Amount            int
	SessionDay        string
}

func (r Rewards) XP() int    { return r.Amount }
func (r Rewards) Coins() int { return r.Amount }

func MinutesForXP(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 0
	}
	return (durationSeconds + 59) / 60
}

func RebirthMultiplier(rebirths int) float64 {
	if rebirths < 0 {
		rebirths = 0
	}
	return 1 + float64(rebirths)*RebirthMultiplierStep
}

func ComputeRewards(durationSeconds int, chores []string, endedAt time.Time, st State) Rewards {
	minutes := MinutesForXP(durationSeconds)
	choreXP := len(chores) * XPPerChore
	day := clock.DateKey(endedAt)

	bonus := 0
	if st.LastDailyBonusDate != day {
		bonus = DailyBonusXP
	}
	base := choreXP + minutes + bonus

	rebirthMult := RebirthMultiplier(st.Rebirths)
	gloves := st.Consumables.GoldenGloves > 0
	gloveMult := 1.0
	if gloves {
		gloveMult = GoldenGlovesFactor
	}
	mult := rebirthMult * gloveMult

	amount := int(roundHalfUp(float64(base) * mult))
	if amount < 0 {
		amount = 0
	}

	return Rewards{
		MinutesForXP:      minutes,
		ChoreXP:           choreXP,
		TimeXP:            minutes,
		BonusXP:           bonus,
		BaseXP:            base,
		Multiplier:        mult,
		RebirthMultiplier: rebirthMult,
		UsedGoldenGloves:  gloves,
		Amount:            amount,
		SessionDay:        day,
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
