package service

import (
	"context"
	"time"

	"chorely/internal/modules/timer/domain"
	"chorely/internal/platform/clock"
	"chorely/internal/platform/id"
)

type TimerService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewTimerService(clock clock.Clock, idGen id.Generator) *TimerService {
	return &TimerService{clock: clock, idGen: idGen}
}

func (s *TimerService) Now() time.Time {
	return s.clock.Now()
}

func (s *TimerService) Start(_ context.Context) domain.ActiveTimer {
	return domain.New(s.idGen.New(), s.clock.Now())
}

func (s *TimerService) Pause(_ context.Context, t domain.ActiveTimer) (domain.ActiveTimer, error) {
	return t.Pause(s.clock.Now())
}

func (s *TimerService) Resume(_ context.Context, t domain.ActiveTimer) (domain.ActiveTimer, error) {
	return t.Resume(s.clock.Now())
}
