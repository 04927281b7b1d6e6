package in

import (
	"context"

	economydto "chorely/internal/modules/economy/dto"
	"chorely/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.TimerOutput, error)
	Pause(ctx context.Context) (dto.TimerOutput, error)
	Resume(ctx context.Context) (dto.TimerOutput, error)
	Status(ctx context.Context) (dto.TimerOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Discard(ctx context.Context) error
	LogManual(ctx context.Context, input dto.ManualInput) (economydto.SessionOutput, error)
}
