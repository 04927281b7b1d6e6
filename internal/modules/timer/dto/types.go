package dto

import (
	"time"

	economydto "chorely/internal/modules/economy/dto"
)

type TimerOutput struct {
	ID        string
	Status    string
	StartedAt time.Time
	Elapsed   time.Duration
}

type StopInput struct {
	TimerID string
	Chores  []string
}

type StopOutput struct {
	TimerID string
	Session economydto.SessionOutput
}

type ManualInput struct {
	Minutes float64
	Chores  []string
}
