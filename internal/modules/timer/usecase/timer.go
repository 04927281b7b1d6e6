package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	economydto "chorely/internal/modules/economy/dto"
	economyin "chorely/internal/modules/economy/port/in"
	"chorely/internal/modules/timer/domain"
	timerdto "chorely/internal/modules/timer/dto"
	timerin "chorely/internal/modules/timer/port/in"
	timerout "chorely/internal/modules/timer/port/out"
	"chorely/internal/modules/timer/service"
	apperrors "chorely/internal/platform/errors"
)

type Interactor struct {
	svc         *service.TimerService
	economy     economyin.Usecase
	activeStore timerout.ActiveTimerStore
}

func NewInteractor(svc *service.TimerService, economy economyin.Usecase, activeStore timerout.ActiveTimerStore) timerin.Usecase {
	return &Interactor{svc: svc, economy: economy, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context) (timerdto.TimerOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return timerdto.TimerOutput{}, apperrors.ErrActiveTimerExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveTimer) {
		return timerdto.TimerOutput{}, err
	}
	timer := i.svc.Start(ctx)
	if err := i.activeStore.SaveActive(ctx, timer); err != nil {
		return timerdto.TimerOutput{}, err
	}
	return i.output(timer), nil
}

func (i *Interactor) Pause(ctx context.Context) (timerdto.TimerOutput, error) {
	return i.transition(ctx, i.svc.Pause)
}

func (i *Interactor) Resume(ctx context.Context) (timerdto.TimerOutput, error) {
	return i.transition(ctx, i.svc.Resume)
}

func (i *Interactor) Status(ctx context.Context) (timerdto.TimerOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return timerdto.TimerOutput{}, err
	}
	return i.output(timer), nil
}

// Stop commits the stopwatch reading as a session. When the economy rejects
// the draft the timer is kept so the caller can fix the chores and retry.
func (i *Interactor) Stop(ctx context.Context, input timerdto.StopInput) (timerdto.StopOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return timerdto.StopOutput{}, err
	}
	if input.TimerID != "" && input.TimerID != timer.ID {
		return timerdto.StopOutput{}, apperrors.Invalid("timer", "timer id mismatch")
	}
	endedAt := i.svc.Now()
	session, err := i.economy.CommitSession(ctx, economydto.CommitInput{
		ID:              timer.ID,
		Source:          "stopwatch",
		StartedAt:       time.UnixMilli(timer.StartedAt),
		EndedAt:         endedAt,
		DurationSeconds: timer.DurationSeconds(endedAt),
		Chores:          input.Chores,
	})
	if err != nil {
		return timerdto.StopOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return timerdto.StopOutput{}, fmt.Errorf("session %s saved but timer not cleared: %w", session.ID, err)
	}
	return timerdto.StopOutput{TimerID: timer.ID, Session: session}, nil
}

func (i *Interactor) Discard(ctx context.Context) error {
	if _, err := i.activeStore.LoadActive(ctx); err != nil {
		return err
	}
	return i.activeStore.ClearActive(ctx)
}

func (i *Interactor) LogManual(ctx context.Context, input timerdto.ManualInput) (economydto.SessionOutput, error) {
	duration, err := domain.ManualDurationSeconds(input.Minutes)
	if err != nil {
		return economydto.SessionOutput{}, err
	}
	endedAt := i.svc.Now()
	return i.economy.CommitSession(ctx, economydto.CommitInput{
		Source:          "manual",
		StartedAt:       endedAt.Add(-time.Duration(duration) * time.Second),
		EndedAt:         endedAt,
		DurationSeconds: duration,
		Chores:          input.Chores,
	})
}

func (i *Interactor) transition(ctx context.Context, fn func(context.Context, domain.ActiveTimer) (domain.ActiveTimer, error)) (timerdto.TimerOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return timerdto.TimerOutput{}, err
	}
	next, err := fn(ctx, timer)
	if err != nil {
		return timerdto.TimerOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, next); err != nil {
		return timerdto.TimerOutput{}, err
	}
	return i.output(next), nil
}

func (i *Interactor) output(timer domain.ActiveTimer) timerdto.TimerOutput {
	return timerdto.TimerOutput{
		ID:        timer.ID,
		Status:    string(timer.Status),
		StartedAt: time.UnixMilli(timer.StartedAt),
		Elapsed:   timer.Elapsed(i.svc.Now()),
	}
}
