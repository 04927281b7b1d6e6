package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"chorely/internal/modules/economy/domain"
	economyout "chorely/internal/modules/economy/port/out"
	"chorely/internal/platform/clock"
	"chorely/internal/platform/id"
	"chorely/internal/platform/logging"
	"chorely/internal/platform/tx"
)

// Ledger owns the in-memory state, history and chore list. Records are read
// once, on first use. Every mutation computes the full next value, writes all
// three records, and only then replaces the in-memory copy.
type Ledger struct {
	clock  clock.Clock
	idGen  id.Generator
	store  economyout.KeyValueStore
	tx     tx.Manager
	logger *slog.Logger
	loc    *time.Location

	mu       sync.Mutex
	loaded   bool
	issues   []string
	state    domain.State
	sessions []domain.Session
	chores   []string
}

func NewLedger(clk clock.Clock, idGen id.Generator, store economyout.KeyValueStore, txm tx.Manager, logger *slog.Logger, loc *time.Location) *Ledger {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{clock: clk, idGen: idGen, store: store, tx: txm, logger: logging.OrDiscard(logger), loc: loc}
}

func (l *Ledger) Location() *time.Location { return l.loc }

func (l *Ledger) Now() time.Time { return l.clock.Now().In(l.loc) }

func (l *Ledger) Snapshot(ctx context.Context) (domain.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return domain.State{}, err
	}
	return l.state.Clone(), nil
}

func (l *Ledger) Sessions(ctx context.Context) ([]domain.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(l.sessions), nil
}

func (l *Ledger) Chores(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(l.chores), nil
}

func (l *Ledger) LoadIssues(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(l.issues), nil
}

func (l *Ledger) Preview(ctx context.Context, durationSeconds int, chores []string, endedAt time.Time) (domain.Rewards, error) {
	st, err := l.Snapshot(ctx)
	if err != nil {
		return domain.Rewards{}, err
	}
	return domain.ComputeRewards(durationSeconds, domain.DedupeChores(chores), endedAt.In(l.loc), st), nil
}

func (l *Ledger) Commit(ctx context.Context, draft domain.Draft) (domain.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return domain.Session{}, err
	}
	if draft.ID == "" {
		draft.ID = l.idGen.New()
	}
	draft.StartedAt = draft.StartedAt.In(l.loc)
	draft.EndedAt = draft.EndedAt.In(l.loc)

	next, session, err := domain.CommitSession(l.state, draft)
	if err != nil {
		return domain.Session{}, err
	}
	history := append(slices.Clip(l.sessions), session)
	if err := l.persist(ctx, next, history, l.chores); err != nil {
		return domain.Session{}, err
	}
	l.state, l.sessions = next, history
	l.logger.Info("session committed",
		"id", session.ID,
		"source", session.Source,
		"xp", session.XP(),
		"bonus_xp", session.BonusXP,
		"golden_gloves", session.UsedGoldenGloves,
	)
	return session, nil
}

// Apply runs a state-only mutation. fn receives a private copy.
func (l *Ledger) Apply(ctx context.Context, op string, fn func(domain.State) (domain.State, error)) (domain.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return domain.State{}, err
	}
	next, err := fn(l.state.Clone())
	if err != nil {
		l.logger.Debug("ledger operation rejected", "op", op, "err", err)
		return domain.State{}, err
	}
	if err := l.persist(ctx, next, l.sessions, l.chores); err != nil {
		return domain.State{}, err
	}
	l.state = next
	l.logger.Info("ledger updated", "op", op, "coins", next.TotalCoins, "tokens", next.Tokens, "rebirths", next.Rebirths)
	return next.Clone(), nil
}

func (l *Ledger) UpdateChores(ctx context.Context, fn func([]string) ([]string, error)) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	next, err := fn(slices.Clone(l.chores))
	if err != nil {
		return nil, err
	}
	if err := l.persist(ctx, l.state, l.sessions, next); err != nil {
		return nil, err
	}
	l.chores = next
	return slices.Clone(next), nil
}

func (l *Ledger) ensureLoaded(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	raw := map[string][]byte{}
	for _, key := range []string{economyout.KeyStats, economyout.KeySessions, economyout.KeyChores} {
		b, ok, err := l.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		if ok {
			raw[key] = b
		}
	}

	var issues []string
	note := func(key string, err error) {
		if err == nil {
			return
		}
		issues = append(issues, fmt.Sprintf("%s: %v", key, err))
		l.logger.Warn("stored record replaced with defaults", "key", key, "err", err)
	}
	st, err := domain.DecodeState(raw[economyout.KeyStats])
	note(economyout.KeyStats, err)
	sessions, err := domain.DecodeSessions(raw[economyout.KeySessions], l.loc)
	note(economyout.KeySessions, err)
	chores, err := domain.DecodeChores(raw[economyout.KeyChores])
	note(economyout.KeyChores, err)

	l.state, l.sessions, l.chores, l.issues = st, sessions, chores, issues
	l.loaded = true
	l.logger.Debug("ledger loaded", "sessions", len(sessions), "chores", len(chores), "level", domain.Level(st.TotalXP))
	return nil
}

func (l *Ledger) persist(ctx context.Context, st domain.State, sessions []domain.Session, chores []string) error {
	if sessions == nil {
		sessions = []domain.Session{}
	}
	if chores == nil {
		chores = []string{}
	}
	records := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		economyout.KeySessions: sessions,
		economyout.KeyStats:    st,
		economyout.KeyChores:   chores,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		records[key] = b
	}
	return l.tx.Within(ctx, func(ctx context.Context) error {
		for _, key := range []string{economyout.KeySessions, economyout.KeyStats, economyout.KeyChores} {
			if err := l.store.Set(ctx, key, records[key]); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
		}
		return nil
	})
}
