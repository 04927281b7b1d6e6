package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "chorely/internal/platform/errors"
)

func CommitSession(st State, draft Draft) (State, Session, error) {
	chores := DedupeChores(draft.Chores)
	if len(chores) == 0 {
		return st, Session{}, apperrors.Invalid("chores", "select at least one chore")
	}
	if draft.DurationSeconds <= 0 {
		return st, Session{}, apperrors.Invalid("durationSeconds", "duration must be greater than zero")
	}
	if !draft.Source.Valid() {
		return st, Session{}, apperrors.Invalid("source", fmt.Sprintf("unknown source %q", draft.Source))
	}
	if draft.EndedAt.IsZero() {
		return st, Session{}, apperrors.Invalid("endedAt", "end time is required")
	}
	if draft.EndedAt.Before(draft.StartedAt) {
		return st, Session{}, apperrors.Invalid("endedAt", "end time is before start time")
	}

	r := ComputeRewards(draft.DurationSeconds, chores, draft.EndedAt, st)

	next := st.Clone()
	if r.BonusXP > 0 {
		next.LastDailyBonusDate = r.SessionDay
	}
	if r.UsedGoldenGloves {
		next.Consumables.GoldenGloves = max(0, next.Consumables.GoldenGloves-1)
	}
	next.TotalXP += r.Amount
	next.TotalCoins += r.Amount

	session := Session{
		ID:                draft.ID,
		Source:            draft.Source,
		StartedAt:         draft.StartedAt.UnixMilli(),
		EndedAt:           draft.EndedAt.UnixMilli(),
		DateKey:           r.SessionDay,
		DurationSeconds:   draft.DurationSeconds,
		Chores:            chores,
		Reward:            r.Amount,
		BonusXP:           r.BonusXP,
		Multiplier:        r.Multiplier,
		RebirthMultiplier: r.RebirthMultiplier,
		UsedGoldenGloves:  r.UsedGoldenGloves,
	}
	return next, session, nil
}

func SpendCoins(st State, amount int) (State, error) {
	if amount <= 0 {
		return st, apperrors.Invalid("amount", "spend amount must be positive")
	}
	if st.TotalCoins < amount {
		return st, fmt.Errorf("%w: need %d, have %d", apperrors.ErrInsufficientFunds, amount, st.TotalCoins)
	}
	next := st.Clone()
	next.TotalCoins -= amount
	return next, nil
}

func DeductTokens(st State, amount float64, now time.Time) (State, int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return st, 0, apperrors.Invalid("amount", "deduct amount must be a positive number")
	}
	n := math.Floor(amount)
	if n < 1 {
		return st, 0, apperrors.Invalid("amount", "deduct at least one whole token")
	}
	whole := int(math.Min(n, float64(math.MaxInt32)))
	next := st.Clone()
	next.Tokens = max(0, next.Tokens-whole)
	next = next.appendPurchase(Purchase{
		ItemID: ItemTokenDeduct,
		At:     now.UnixMilli(),
		Note:   fmt.Sprintf("-%d tokens", whole),
	})
	return next, whole, nil
}
