package out

import (
	"context"

	"chorely/internal/modules/report/domain"
)

// JournalWriter renders sessions and week summaries as notes under root.
type JournalWriter interface {
	WriteSession(ctx context.Context, root string, session domain.SessionRecord) (string, error)
	WriteWeek(ctx context.Context, root string, week domain.WeekSummary) (string, error)
}
