package usecase

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	economydto "chorely/internal/modules/economy/dto"
	economyin "chorely/internal/modules/economy/port/in"
	"chorely/internal/modules/report/domain"
	reportdto "chorely/internal/modules/report/dto"
	reportin "chorely/internal/modules/report/port/in"
	reportout "chorely/internal/modules/report/port/out"
	"chorely/internal/platform/clock"
	apperrors "chorely/internal/platform/errors"
)

type Interactor struct {
	economy economyin.Usecase
	journal reportout.JournalWriter
	clock   clock.Clock
	loc     *time.Location
}

func NewInteractor(economy economyin.Usecase, journal reportout.JournalWriter, clk clock.Clock, loc *time.Location) reportin.Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Interactor{economy: economy, journal: journal, clock: clk, loc: loc}
}

func (i *Interactor) Weekly(ctx context.Context, input reportdto.WeeklyInput) (reportdto.WeeklyOutput, error) {
	weeks, current, err := i.weeks(ctx)
	if err != nil {
		return reportdto.WeeklyOutput{}, err
	}
	selected := strings.TrimSpace(input.WeekKey)
	if _, ok := weeks[selected]; !ok {
		selected = current
	}

	keys := domain.Keys(weeks)
	options := make([]reportdto.WeekOption, 0, len(keys))
	for _, k := range keys {
		options = append(options, reportdto.WeekOption{WeekKey: k, Label: domain.WeekRangeLabel(k, i.loc), IsCurrent: k == current})
	}

	t := weeks[selected]
	top := domain.TopStat(t)
	return reportdto.WeeklyOutput{
		WeekKey:        selected,
		Label:          domain.WeekRangeLabel(selected, i.loc),
		IsCurrent:      selected == current,
		Weeks:          options,
		TotalSeconds:   t.TotalSeconds,
		TotalTimeText:  domain.FormatDurationShort(float64(t.TotalSeconds)),
		TotalChores:    t.TotalChores,
		TotalXP:        t.TotalXP,
		TotalCoins:     t.TotalCoins,
		Sessions:       t.SessionCount,
		AverageSeconds: t.AverageSeconds(),
		AverageText:    domain.FormatDurationShort(t.AverageSeconds()),
		TopLabel:       top.Label,
		TopText:        top.Text,
	}, nil
}

func (i *Interactor) History(ctx context.Context, input reportdto.HistoryInput) ([]economydto.SessionOutput, error) {
	sessions, err := i.economy.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(sessions)
	if input.Limit > 0 && len(sessions) > input.Limit {
		sessions = sessions[:input.Limit]
	}
	return sessions, nil
}

func (i *Interactor) ExportJournal(ctx context.Context, input reportdto.ExportInput) (reportdto.ExportOutput, error) {
	root := strings.TrimSpace(input.Dir)
	if root == "" {
		return reportdto.ExportOutput{}, apperrors.Invalid("dir", "journal directory is required")
	}
	sessions, err := i.economy.Sessions(ctx)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	out := reportdto.ExportOutput{}
	for _, s := range sessions {
		if s.EndedAt.IsZero() {
			continue
		}
		path, err := i.journal.WriteSession(ctx, root, domain.SessionRecord{
			ID:               s.ID,
			Source:           s.Source,
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			DurationSeconds:  s.DurationSeconds,
			Chores:           s.Chores,
			XP:               s.XP,
			Coins:            s.Coins,
			BonusXP:          s.BonusXP,
			Multiplier:       s.Multiplier,
			UsedGoldenGloves: s.UsedGoldenGloves,
		})
		if err != nil {
			return out, err
		}
		out.SessionNotes = append(out.SessionNotes, path)
	}

	weeks := domain.Aggregate(entries(sessions), i.clock.Now(), i.loc)
	for _, k := range domain.Keys(weeks) {
		t := weeks[k]
		path, err := i.journal.WriteWeek(ctx, root, domain.WeekSummary{
			WeekKey: k,
			Label:   domain.WeekRangeLabel(k, i.loc),
			Totals:  t,
			Top:     domain.TopStat(t),
		})
		if err != nil {
			return out, err
		}
		out.WeekNotes = append(out.WeekNotes, path)
	}
	return out, nil
}

func (i *Interactor) weeks(ctx context.Context) (map[string]domain.Totals, string, error) {
	sessions, err := i.economy.Sessions(ctx)
	if err != nil {
		return nil, "", err
	}
	now := i.clock.Now()
	return domain.Aggregate(entries(sessions), now, i.loc), domain.CurrentWeekKey(now, i.loc), nil
}

func entries(sessions []economydto.SessionOutput) []domain.Entry {
	out := make([]domain.Entry, 0, len(sessions))
	for _, s := range sessions {
		e := domain.Entry{DurationSeconds: s.DurationSeconds, Chores: len(s.Chores), XP: s.XP, Coins: s.Coins}
		if !s.EndedAt.IsZero() {
			e.EndedAt = s.EndedAt.UnixMilli()
		}
		out = append(out, e)
	}
	return out
}

func sortNewestFirst(sessions []economydto.SessionOutput) {
	slices.SortStableFunc(sessions, func(a, b economydto.SessionOutput) int {
		return cmp.Compare(b.EndedAt.UnixMilli(), a.EndedAt.UnixMilli())
	})
}
