package domain_test

import (
	"reflect"
	"testing"
	"time"

	"chorely/internal/modules/report/domain"
)

func ms(y int, m time.Month, d, h int) int64 {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC).UnixMilli()
}

func TestAggregateBucketsByMondayWeek(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		{EndedAt: ms(2026, 2, 23, 8), DurationSeconds: 600, Chores: 2, XP: 50, Coins: 50},
		{EndedAt: ms(2026, 3, 1, 22), DurationSeconds: 300, Chores: 1, XP: 15, Coins: 15},
		{EndedAt: ms(2026, 3, 2, 0), DurationSeconds: 60, Chores: 1, XP: 31, Coins: 31},
		{EndedAt: 0, DurationSeconds: 9999, Chores: 5, XP: 999, Coins: 999},
	}
	weeks := domain.Aggregate(entries, now, time.UTC)

	if len(weeks) != 2 {
		t.Fatalf("expected two buckets, got %v", weeks)
	}
	prev := weeks["2026-02-23"]
	want := domain.Totals{TotalSeconds: 900, TotalChores: 3, TotalXP: 65, TotalCoins: 65, SessionCount: 2}
	if prev != want {
		t.Fatalf("unexpected previous week %+v", prev)
	}
	if cur := weeks["2026-03-02"]; cur.SessionCount != 1 || cur.TotalXP != 31 {
		t.Fatalf("unexpected current week %+v", cur)
	}
	if got := domain.Keys(weeks); !reflect.DeepEqual(got, []string{"2026-03-02", "2026-02-23"}) {
		t.Fatalf("expected newest first, got %v", got)
	}
	if prev.AverageSeconds() != 450 {
		t.Fatalf("unexpected average %v", prev.AverageSeconds())
	}
}

func TestAggregateAlwaysHasCurrentWeek(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)
	weeks := domain.Aggregate(nil, now, time.UTC)
	got, ok := weeks["2026-03-02"]
	if !ok || got != (domain.Totals{}) {
		t.Fatalf("expected empty current week, got %v", weeks)
	}
	if got.AverageSeconds() != 0 {
		t.Fatalf("average of no sessions must be 0")
	}
}

func TestAggregateUsesLocalWeekBoundary(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC-8", -8*60*60)
	// Monday 03:00 UTC is still Sunday evening at UTC-8.
	entries := []domain.Entry{{EndedAt: ms(2026, 3, 2, 3), DurationSeconds: 60, Chores: 1, XP: 1, Coins: 1}}
	weeks := domain.Aggregate(entries, time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC), loc)
	if weeks["2026-02-23"].SessionCount != 1 {
		t.Fatalf("expected session in the previous local week, got %v", weeks)
	}
}

func TestWeekRangeLabel(t *testing.T) {
	t.Parallel()
	if got := domain.WeekRangeLabel("2026-02-23", time.UTC); got != "Feb 23 - Mar 01" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := domain.WeekRangeLabel("garbage", time.UTC); got != "garbage" {
		t.Fatalf("bad keys fall back to the key, got %q", got)
	}
}

func TestTopStat(t *testing.T) {
	t.Parallel()
	top := domain.TopStat(domain.Totals{TotalSeconds: 4000, TotalXP: 120, TotalChores: 9, SessionCount: 3})
	if top.Label != "Total time" || top.Text != "1h 7m" {
		t.Fatalf("unexpected top stat %+v", top)
	}
	if tie := domain.TopStat(domain.Totals{}); tie.Label != "Total XP" || tie.Text != "0 XP" {
		t.Fatalf("ties must go to XP, got %+v", tie)
	}
}

func TestFormatDurationShort(t *testing.T) {
	t.Parallel()
	cases := map[float64]string{0: "0m", 29: "0m", 30: "1m", 3540: "59m", 3570: "1h", 3600: "1h", 5400: "1h 30m", -5: "0m", 450.5: "8m"}
	for in, want := range cases {
		if got := domain.FormatDurationShort(in); got != want {
			t.Fatalf("FormatDurationShort(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()
	if got := domain.FormatClock(620); got != "10:20" {
		t.Fatalf("unexpected clock %q", got)
	}
	if got := domain.FormatClock(3725); got != "62:05" {
		t.Fatalf("unexpected clock %q", got)
	}
}
