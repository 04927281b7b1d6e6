package domain

import (
	"fmt"
	"math"
)

// FormatDurationShort renders whole minutes as "Xm", "Xh" or "Xh Ym".
func FormatDurationShort(totalSeconds float64) string {
	if math.IsNaN(totalSeconds) || totalSeconds < 0 {
		totalSeconds = 0
	}
	seconds := math.Floor(totalSeconds)
	minutes := int(math.Floor(seconds/60 + 0.5))
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours <= 0:
		return fmt.Sprintf("%dm", minutes)
	case mins <= 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
