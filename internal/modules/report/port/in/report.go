package in

import (
	"context"

	economydto "chorely/internal/modules/economy/dto"
	"chorely/internal/modules/report/dto"
)

type Usecase interface {
	Weekly(ctx context.Context, input dto.WeeklyInput) (dto.WeeklyOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]economydto.SessionOutput, error)
	ExportJournal(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
