package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	economyadapter "chorely/internal/modules/economy/adapter/out"
	"chorely/internal/modules/economy/dto"
	economyin "chorely/internal/modules/economy/port/in"
	economyout "chorely/internal/modules/economy/port/out"
	"chorely/internal/modules/economy/service"
	"chorely/internal/modules/economy/usecase"
	apperrors "chorely/internal/platform/errors"
	"chorely/internal/platform/tx"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "sess-" + string(rune('0'+s.n))
}

type failingStore struct {
	*economyadapter.MemoryStore
	failSet bool
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

var noon = time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC)

func newInteractor(store economyout.KeyValueStore, txm tx.Manager) economyin.Usecase {
	clk := &fakeClock{values: []time.Time{noon}}
	ledger := service.NewLedger(clk, &seqID{}, store, txm, nil, time.UTC)
	return usecase.NewInteractor(ledger)
}

func manual(minutes int, chores ...string) dto.CommitInput {
	return dto.CommitInput{
		Source:          "manual",
		StartedAt:       noon.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:         noon,
		DurationSeconds: minutes * 60,
		Chores:          chores,
	}
}

func TestCommitWritesThroughAllRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := economyadapter.NewMemoryStore()
	uc := newInteractor(store, nil)

	out, err := uc.CommitSession(ctx, manual(15, "Dishes", "Trash"))
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if out.ID != "sess-1" || out.XP != 55 || out.Coins != out.XP {
		t.Fatalf("unexpected session %+v", out)
	}
	if store.Writes() != 3 {
		t.Fatalf("expected one write per record, got %d", store.Writes())
	}

	raw, ok, _ := store.Get(ctx, economyout.KeySessions)
	if !ok {
		t.Fatalf("sessions record missing")
	}
	var sessions []map[string]any
	if err := json.Unmarshal(raw, &sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0]["xp"] != float64(55) || sessions[0]["coins"] != float64(55) {
		t.Fatalf("unexpected stored sessions %v", sessions)
	}
	if raw, _, _ := store.Get(ctx, economyout.KeyChores); !strings.Contains(string(raw), "Wipe counters") {
		t.Fatalf("expected default chores persisted, got %s", raw)
	}

	reloaded := newInteractor(store, nil)
	status, err := reloaded.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.TotalXP != 55 || status.TotalCoins != 55 || status.LastDailyBonusDate != "2026-02-25" || status.BonusAvailable {
		t.Fatalf("unexpected reloaded status %+v", status)
	}
}

func TestFailedWriteKeepsPreviousState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &failingStore{MemoryStore: economyadapter.NewMemoryStore()}
	uc := newInteractor(store, nil)

	if _, err := uc.CommitSession(ctx, manual(10, "Dishes")); err != nil {
		t.Fatalf("commit: %v", err)
	}
	store.failSet = true
	if _, err := uc.CommitSession(ctx, manual(10, "Laundry")); err == nil {
		t.Fatalf("expected write failure")
	}
	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.TotalXP != 40 {
		t.Fatalf("expected state from the first commit only, got %d", status.TotalXP)
	}
	sessions, _ := uc.Sessions(ctx)
	if len(sessions) != 1 {
		t.Fatalf("expected one session in memory, got %d", len(sessions))
	}
}

func TestValidationRejectsWithoutWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := economyadapter.NewMemoryStore()
	uc := newInteractor(store, nil)
	if _, err := uc.CommitSession(ctx, manual(10)); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := uc.Buy(ctx, "golden-gloves"); !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if store.Writes() != 0 {
		t.Fatalf("rejected operations must not write, got %d writes", store.Writes())
	}
}

func TestShopRebirthAndTokensThroughSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := economyadapter.NewSQLiteStore(filepath.Join(t.TempDir(), "chorely.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	seed := `{"totalXP":2400,"totalCoins":3500,"consumables":{"goldenGloves":0}}`
	if err := store.Set(ctx, economyout.KeyStats, []byte(seed)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newInteractor(store, store)

	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Level != 10 || !status.MaxLevel || !status.CanRebirth {
		t.Fatalf("expected max level with rebirth available, got %+v", status)
	}

	bought, err := uc.Buy(ctx, "token")
	if err != nil {
		t.Fatalf("buy token: %v", err)
	}
	if bought.Status.Tokens != 1 || bought.Status.TotalCoins != 1500 || bought.Purchase.Note != "+1 token" {
		t.Fatalf("unexpected token purchase %+v", bought)
	}

	status, err = uc.Rebirth(ctx)
	if err != nil {
		t.Fatalf("rebirth: %v", err)
	}
	if status.TotalXP != 0 || status.Rebirths != 1 || status.TotalCoins != 500 || status.RebirthMultiplier != 1.25 {
		t.Fatalf("unexpected post rebirth status %+v", status)
	}

	deducted, err := uc.DeductTokens(ctx, 5)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if deducted.Status.Tokens != 0 || deducted.Deducted != 5 {
		t.Fatalf("unexpected deduct result %+v", deducted)
	}

	reloaded := newInteractor(store, store)
	status, err = reloaded.Status(ctx)
	if err != nil {
		t.Fatalf("status after reload: %v", err)
	}
	if status.Rebirths != 1 || len(status.Purchases) != 3 {
		t.Fatalf("expected rebirth and 3 log entries persisted, got %+v", status)
	}
	if status.Purchases[1].ItemID != "rebirth" || !status.Purchases[1].At.Equal(noon) {
		t.Fatalf("unexpected rebirth log entry %+v", status.Purchases[1])
	}
}

func TestRebirthKeepsSessionHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := economyadapter.NewSQLiteStore(filepath.Join(t.TempDir(), "chorely.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Set(ctx, economyout.KeyStats, []byte(`{"totalXP":2400,"totalCoins":1000}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newInteractor(store, store)

	for _, in := range []dto.CommitInput{manual(5, "Dishes"), manual(10, "Trash", "Laundry")} {
		if _, err := uc.CommitSession(ctx, in); err != nil {
			t.Fatalf("commit: %v", err)
		}
	}
	before, err := uc.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(before) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(before))
	}

	status, err := uc.Rebirth(ctx)
	if err != nil {
		t.Fatalf("rebirth: %v", err)
	}
	if status.TotalXP != 0 || status.Rebirths != 1 {
		t.Fatalf("unexpected post rebirth status %+v", status)
	}

	check := func(name string, got []dto.SessionOutput) {
		t.Helper()
		if len(got) != len(before) {
			t.Fatalf("%s: history length changed from %d to %d", name, len(before), len(got))
		}
		for i := range got {
			if got[i].ID != before[i].ID || got[i].XP != before[i].XP || got[i].Coins != before[i].Coins {
				t.Fatalf("%s: session %d changed: %+v vs %+v", name, i, got[i], before[i])
			}
		}
	}
	after, err := uc.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions after rebirth: %v", err)
	}
	check("in memory", after)

	reloaded, err := newInteractor(store, store).Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions after reload: %v", err)
	}
	check("reloaded", reloaded)
}

func TestAppearanceAndSettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := economyadapter.NewMemoryStore()
	_ = store.Set(ctx, economyout.KeyStats, []byte(`{"totalCoins":1200}`))
	uc := newInteractor(store, nil)

	if _, err := uc.UseTheme(ctx, "dark-red"); !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected locked theme, got %v", err)
	}
	if _, err := uc.Buy(ctx, "theme:dark-red"); err != nil {
		t.Fatalf("buy theme: %v", err)
	}
	status, err := uc.UseTheme(ctx, "default")
	if err != nil || status.ActiveTheme != "default" {
		t.Fatalf("switch back to default: %+v %v", status, err)
	}
	if _, err := uc.Buy(ctx, "music-pack"); err != nil {
		t.Fatalf("buy music pack: %v", err)
	}
	status, err = uc.SetMusicTrack(ctx, "track-2")
	if err != nil || status.TrackID != "track-2" {
		t.Fatalf("set track: %+v %v", status, err)
	}
	status, err = uc.SetMusicVolume(ctx, -3)
	if err != nil || status.Volume != 0 {
		t.Fatalf("expected volume clamped to 0, got %+v %v", status.Volume, err)
	}

	items, err := uc.ListShop(ctx)
	if err != nil {
		t.Fatalf("list shop: %v", err)
	}
	for _, it := range items {
		if it.ID == "music-pack" && !it.Owned {
			t.Fatalf("music pack should show as owned")
		}
		if it.ID == "token" && it.Affordable {
			t.Fatalf("token exchange should not be affordable with %d coins", status.TotalCoins)
		}
	}
}

func TestChoreCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(economyadapter.NewMemoryStore(), nil)

	out, err := uc.AddChore(ctx, "  Water  plants")
	if err != nil || !out.Changed || out.Chores[len(out.Chores)-1] != "Water plants" {
		t.Fatalf("unexpected add result %+v %v", out, err)
	}
	out, err = uc.AddChore(ctx, "water PLANTS")
	if err != nil || out.Changed {
		t.Fatalf("duplicate should be a no-op, got %+v %v", out, err)
	}
	if _, err := uc.CommitSession(ctx, manual(5, "Water plants")); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := uc.RemoveChore(ctx, "Water plants"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	sessions, _ := uc.Sessions(ctx)
	if len(sessions) != 1 || sessions[0].Chores[0] != "Water plants" {
		t.Fatalf("history must keep removed chore names, got %+v", sessions)
	}
}

func TestDoctorReportsCorruptRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := economyadapter.NewMemoryStore()
	_ = store.Set(ctx, economyout.KeyStats, []byte(`{not json`))
	_ = store.Set(ctx, economyout.KeySessions, []byte(`[{"id":"a","endedAt":0,"xp":5,"chores":["Dishes"]},{"id":"a","endedAt":10,"startedAt":5,"chores":["Dishes"]}]`))
	uc := newInteractor(store, nil)

	report, err := uc.Doctor(ctx)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.Sessions != 2 || report.Chores != 9 {
		t.Fatalf("unexpected counts %+v", report)
	}
	joined := strings.Join(report.Problems, "\n")
	for _, want := range []string{economyout.KeyStats, "no end time", "more than once"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected problem mentioning %q, got:\n%s", want, joined)
		}
	}

	status, err := uc.Status(ctx)
	if err != nil || status.ActiveTheme != "default" {
		t.Fatalf("corrupt stats must load as defaults, got %+v %v", status, err)
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := economyadapter.NewMemoryStore()
	_ = store.Set(ctx, economyout.KeyStats, []byte(`{"consumables":{"goldenGloves":1}}`))
	uc := newInteractor(store, nil)

	r, err := uc.Preview(ctx, dto.PreviewInput{DurationSeconds: 61, Chores: []string{"Dishes", "Dishes"}})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	// (10 + 2 + 20) * 2
	if r.XP != 64 || !r.UsedGoldenGloves || r.ChoreXP != 10 {
		t.Fatalf("unexpected preview %+v", r)
	}
	status, _ := uc.Status(ctx)
	if status.GoldenGloves != 1 || store.Writes() != 1 {
		t.Fatalf("preview must not consume gloves or write, got %+v writes=%d", status, store.Writes())
	}
}
