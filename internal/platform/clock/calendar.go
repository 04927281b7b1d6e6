package clock

import (
	"fmt"
	"time"
)

// DateLayout is the layout of local calendar date keys ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// FromEpochMs converts a millisecond timestamp into loc. A nil loc means time.Local.
func FromEpochMs(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}

// DateKey returns the calendar day of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location.
// Weeks run Monday through Sunday.
func StartOfWeek(t time.Time) time.Time {
	offsetFromMonday := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offsetFromMonday, 0, 0, 0, 0, t.Location())
}

// WeekKey is the date key of the Monday that starts t's week.
func WeekKey(t time.Time) string {
	return DateKey(StartOfWeek(t))
}

func DateKeyFromEpochMs(ms int64, loc *time.Location) string {
	return DateKey(FromEpochMs(ms, loc))
}

func WeekKeyFromEpochMs(ms int64, loc *time.Location) string {
	return WeekKey(FromEpochMs(ms, loc))
}

// ParseDateKey parses a date key as local midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}
