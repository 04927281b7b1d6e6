package domain

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"chorely/internal/platform/clock"
)

// Entry is the part of a session the weekly report needs.
type Entry struct {
	EndedAt         int64
	DurationSeconds int
	Chores          int
	XP              int
	Coins           int
}

type Totals struct {
	TotalSeconds int
	TotalChores  int
	TotalXP      int
	TotalCoins   int
	SessionCount int
}

func (t Totals) AverageSeconds() float64 {
	if t.SessionCount == 0 {
		return 0
	}
	return float64(t.TotalSeconds) / float64(t.SessionCount)
}

// Aggregate buckets entries by the Monday that starts their week in loc.
// Entries without an end time are skipped. The week containing now is always
// present, possibly with zero totals.
func Aggregate(entries []Entry, now time.Time, loc *time.Location) map[string]Totals {
	out := map[string]Totals{}
	for _, e := range entries {
		if e.EndedAt == 0 {
			continue
		}
		key := clock.WeekKeyFromEpochMs(e.EndedAt, loc)
		t := out[key]
		t.TotalSeconds += e.DurationSeconds
		t.TotalChores += e.Chores
		t.TotalXP += e.XP
		t.TotalCoins += e.Coins
		t.SessionCount++
		out[key] = t
	}
	current := CurrentWeekKey(now, loc)
	if _, ok := out[current]; !ok {
		out[current] = Totals{}
	}
	return out
}

func CurrentWeekKey(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return clock.WeekKey(now.In(loc))
}

func Keys(weeks map[string]Totals) []string {
	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return cmp.Compare(b, a) })
	return keys
}

func WeekRange(weekKey string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := clock.ParseDateKey(weekKey, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 6), nil
}

func WeekRangeLabel(weekKey string, loc *time.Location) string {
	start, end, err := WeekRange(weekKey, loc)
	if err != nil {
		return weekKey
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02"))
}

type Stat struct {
	Label string
	Value int
	Text  string
}

// TopStat picks the largest raw value among XP, time, chores and sessions.
// Ties go to the earlier entry in that order.
func TopStat(t Totals) Stat {
	stats := []Stat{
		{Label: "Total XP", Value: t.TotalXP, Text: fmt.Sprintf("%d XP", t.TotalXP)},
		{Label: "Total time", Value: t.TotalSeconds, Text: FormatDurationShort(float64(t.TotalSeconds))},
		{Label: "Chores", Value: t.TotalChores, Text: fmt.Sprintf("%d chores", t.TotalChores)},
		{Label: "Sessions", Value: t.SessionCount, Text: fmt.Sprintf("%d sessions", t.SessionCount)},
	}
	top := stats[0]
	for _, s := range stats[1:] {
		if s.Value > top.Value {
			top = s
		}
	}
	return top
}
