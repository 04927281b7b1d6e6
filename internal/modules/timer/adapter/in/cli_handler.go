package in

import (
	"context"

	economydto "chorely/internal/modules/economy/dto"
	timerdto "chorely/internal/modules/timer/dto"
	timerin "chorely/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Stop(ctx context.Context, timerID string, chores []string) (timerdto.StopOutput, error) {
	return h.usecase.Stop(ctx, timerdto.StopInput{TimerID: timerID, Chores: chores})
}

func (h CLIHandler) Discard(ctx context.Context) error {
	return h.usecase.Discard(ctx)
}

func (h CLIHandler) LogManual(ctx context.Context, minutes float64, chores []string) (economydto.SessionOutput, error) {
	return h.usecase.LogManual(ctx, timerdto.ManualInput{Minutes: minutes, Chores: chores})
}
