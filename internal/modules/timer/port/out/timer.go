package out

import (
	"context"

	"chorely/internal/modules/timer/domain"
)

type ActiveTimerStore interface {
	SaveActive(ctx context.Context, timer domain.ActiveTimer) error
	LoadActive(ctx context.Context) (domain.ActiveTimer, error)
	ClearActive(ctx context.Context) error
}
