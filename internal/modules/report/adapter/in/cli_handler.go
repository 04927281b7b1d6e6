package in

import (
	"context"

	economydto "chorely/internal/modules/economy/dto"
	reportdto "chorely/internal/modules/report/dto"
	reportin "chorely/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Weekly(ctx context.Context, weekKey string) (reportdto.WeeklyOutput, error) {
	return h.usecase.Weekly(ctx, reportdto.WeeklyInput{WeekKey: weekKey})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]economydto.SessionOutput, error) {
	return h.usecase.History(ctx, reportdto.HistoryInput{Limit: limit})
}

func (h CLIHandler) ExportJournal(ctx context.Context, dir string) (reportdto.ExportOutput, error) {
	return h.usecase.ExportJournal(ctx, reportdto.ExportInput{Dir: dir})
}
