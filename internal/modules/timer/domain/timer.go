package domain

import (
	"math"
	"time"

	apperrors "chorely/internal/platform/errors"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// ActiveTimer is the persisted stopwatch. Times are epoch milliseconds.
// ElapsedMs holds the time accumulated before ResumedAt.
type ActiveTimer struct {
	ID        string `json:"id"`
	Status    Status `json:"status"`
	StartedAt int64  `json:"startedAt"`
	ResumedAt int64  `json:"resumedAt"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func New(id string, now time.Time) ActiveTimer {
	ms := now.UnixMilli()
	return ActiveTimer{ID: id, Status: StatusRunning, StartedAt: ms, ResumedAt: ms}
}

func (t ActiveTimer) Running() bool { return t.Status == StatusRunning }

// ElapsedMsAt is the stopwatch reading at now. It never goes negative, even
// if the wall clock moved backwards.
func (t ActiveTimer) ElapsedMsAt(now time.Time) int64 {
	total := t.ElapsedMs
	if t.Running() {
		total += max(0, now.UnixMilli()-t.ResumedAt)
	}
	return max(0, total)
}

func (t ActiveTimer) Elapsed(now time.Time) time.Duration {
	return time.Duration(t.ElapsedMsAt(now)) * time.Millisecond
}

func (t ActiveTimer) Pause(now time.Time) (ActiveTimer, error) {
	if !t.Running() {
		return t, apperrors.ErrTimerState
	}
	t.ElapsedMs = t.ElapsedMsAt(now)
	t.Status = StatusPaused
	t.ResumedAt = 0
	return t, nil
}

func (t ActiveTimer) Resume(now time.Time) (ActiveTimer, error) {
	if t.Status != StatusPaused {
		return t, apperrors.ErrTimerState
	}
	t.Status = StatusRunning
	t.ResumedAt = now.UnixMilli()
	return t, nil
}

func (t ActiveTimer) DurationSeconds(now time.Time) int {
	return int((t.ElapsedMsAt(now) + 500) / 1000)
}

// MaxManualMinutes caps a hand-logged session at one day.
const MaxManualMinutes = 24 * 60

func ManualDurationSeconds(minutes float64) (int, error) {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return 0, apperrors.Invalid("minutes", "enter minutes greater than 0")
	}
	if minutes > MaxManualMinutes {
		return 0, apperrors.Invalid("minutes", "a logged session can last at most 24 hours")
	}
	return int(minutes*60 + 0.5), nil
}
