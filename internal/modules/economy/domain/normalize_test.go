package domain_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"chorely/internal/modules/economy/domain"
)

func decode(t *testing.T, payload string) any {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return raw
}

func TestNormalizeNilEqualsEmptyObject(t *testing.T) {
	t.Parallel()
	fromNil := domain.Normalize(nil)
	fromEmpty := domain.Normalize(map[string]any{})
	if !reflect.DeepEqual(fromNil, fromEmpty) {
		t.Fatalf("expected equal defaults:\n%+v\n%+v", fromNil, fromEmpty)
	}
	if !reflect.DeepEqual(fromNil, domain.DefaultState()) {
		t.Fatalf("expected default state, got %+v", fromNil)
	}
	if err := domain.Validate(fromNil); err != nil {
		t.Fatalf("default state must be valid: %v", err)
	}
}

func TestNormalizeGarbageNeverFails(t *testing.T) {
	t.Parallel()
	inputs := []any{
		"corrupted", 42.0, true, []any{1.0, "x"},
		decode(t, `{"totalXP":"abc","unlocks":"nope","settings":[1,2],"consumables":null,"purchases":{"a":1}}`),
	}
	for _, in := range inputs {
		st := domain.Normalize(in)
		if err := domain.Validate(st); err != nil {
			t.Fatalf("normalize(%v) produced invalid state: %v", in, err)
		}
	}
}

func TestNormalizeRepairsFieldsIndependently(t *testing.T) {
	t.Parallel()
	raw := decode(t, `{
		"totalXP": "310",
		"totalCoins": 12.9,
		"tokens": -4,
		"rebirths": null,
		"lastDailyBonusDate": 20260225,
		"purchases": [{"itemId":"pet-mop","at":1700000000000,"costCoins":350}, {"at":1}, "junk"],
		"consumables": {"goldenGloves": "2"},
		"unlocks": {"musicPack": 1, "petMop": false, "themes": ["purple", 7, "purple", "default"], "backgrounds": null},
		"activeTheme": "purple",
		"activeBackground": "grid-pattern",
		"settings": {"petMopEnabled": true, "music": {"volume": 3, "trackId": "track-2", "isPlaying": "yes"}}
	}`)
	st := domain.Normalize(raw)

	if st.TotalXP != 310 || st.TotalCoins != 12 || st.Tokens != 0 || st.Rebirths != 0 {
		t.Fatalf("unexpected counters %+v", st)
	}
	if st.LastDailyBonusDate != "" {
		t.Fatalf("non-string bonus date must be dropped, got %q", st.LastDailyBonusDate)
	}
	if len(st.Purchases) != 1 || st.Purchases[0].ItemID != "pet-mop" || st.Purchases[0].CostCoins != 350 {
		t.Fatalf("unexpected purchases %+v", st.Purchases)
	}
	if st.Consumables.GoldenGloves != 2 {
		t.Fatalf("expected 2 gloves, got %d", st.Consumables.GoldenGloves)
	}
	if !st.Unlocks.MusicPack || st.Unlocks.PetMop {
		t.Fatalf("unexpected unlock flags %+v", st.Unlocks)
	}
	if !reflect.DeepEqual(st.Unlocks.Themes, []string{"default", "purple"}) {
		t.Fatalf("unexpected themes %v", st.Unlocks.Themes)
	}
	if !reflect.DeepEqual(st.Unlocks.Backgrounds, []string{"default"}) {
		t.Fatalf("unexpected backgrounds %v", st.Unlocks.Backgrounds)
	}
	if st.ActiveTheme != "purple" || st.ActiveBackground != "default" {
		t.Fatalf("unexpected active selection %s/%s", st.ActiveTheme, st.ActiveBackground)
	}
	if st.Settings.PetMopEnabled {
		t.Fatalf("pet must stay disabled while locked")
	}
	if st.Settings.Music.Volume != 1 || st.Settings.Music.TrackID != "track-2" || !st.Settings.Music.IsPlaying {
		t.Fatalf("unexpected music settings %+v", st.Settings.Music)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []any{
		nil,
		decode(t, `{"totalXP":99.7,"unlocks":{"themes":["black","black"],"petMop":"y"},"activeTheme":"black","settings":{"petMopEnabled":1}}`),
		decode(t, `{"purchases":[{"itemId":"token","at":"5","note":"+1 token"}],"settings":{"music":{"volume":"0.25"}}}`),
	}
	for _, in := range inputs {
		once := domain.Normalize(in)
		twice := domain.Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize not idempotent:\n%+v\n%+v", once, twice)
		}
		var roundTrip any
		b, err := json.Marshal(once)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := json.Unmarshal(b, &roundTrip); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if again := domain.Normalize(roundTrip); !reflect.DeepEqual(once, again) {
			t.Fatalf("normalize after storage round trip differs:\n%+v\n%+v", once, again)
		}
	}
}

func TestDecodeStateReportsBrokenJSON(t *testing.T) {
	t.Parallel()
	st, err := domain.DecodeState([]byte(`{"totalXP":`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !reflect.DeepEqual(st, domain.DefaultState()) {
		t.Fatalf("expected default state on broken input")
	}
	st, err = domain.DecodeState(nil)
	if err != nil || st.ActiveTheme != domain.DefaultTheme {
		t.Fatalf("missing record must give defaults, got %v", err)
	}
}

func TestNormalizeSessions(t *testing.T) {
	t.Parallel()
	ended := time.Date(2026, 2, 25, 18, 0, 0, 0, time.UTC).UnixMilli()
	raw := decode(t, `[
		{"id":"a","source":"stopwatch","startedAt":`+jsonInt(ended-60000)+`,"endedAt":`+jsonInt(ended)+`,"durationSeconds":60,"chores":["Dishes","Dishes",3],"xp":31,"coins":31,"bonusXP":20,"multiplier":1,"rebirthMultiplier":1,"usedGoldenGloves":false},
		{"id":"b","source":"weird","endedAt":0,"coins":"12","multiplier":0.2},
		42,
		null
	]`)
	sessions := domain.NormalizeSessions(raw, time.UTC)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	a := sessions[0]
	if a.DateKey != "2026-02-25" || a.Source != domain.SourceStopwatch || a.XP() != 31 {
		t.Fatalf("unexpected first session %+v", a)
	}
	if !reflect.DeepEqual(a.Chores, []string{"Dishes"}) {
		t.Fatalf("unexpected chores %v", a.Chores)
	}
	b := sessions[1]
	if b.Source != domain.SourceManual || b.DateKey != "" || b.Reward != 12 || b.Multiplier != 1 {
		t.Fatalf("unexpected repaired session %+v", b)
	}
	if out := domain.NormalizeSessions(map[string]any{}, time.UTC); len(out) != 0 {
		t.Fatalf("non-list must give empty history")
	}
}

func TestSessionJSONWritesEqualXPAndCoins(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(domain.Session{ID: "x", Source: domain.SourceManual, Reward: 42})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["xp"] != float64(42) || m["coins"] != float64(42) {
		t.Fatalf("expected xp == coins == 42, got %v", m)
	}
	back, err := domain.DecodeSessions([]byte("["+string(b)+"]"), time.UTC)
	if err != nil || len(back) != 1 || back[0].Reward != 42 {
		t.Fatalf("unexpected decode %+v (%v)", back, err)
	}
}

func TestDecodeSessionsReadsRewardFromXPFirst(t *testing.T) {
	t.Parallel()
	raw := `[{"id":"a","xp":0,"coins":9,"chores":["Dishes"]},{"id":"b","coins":7,"chores":["Trash"]},{"id":"c","xp":"12","coins":3}]`
	got, err := domain.DecodeSessions([]byte(raw), time.UTC)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]int{"a": 0, "b": 7, "c": 12}
	for _, s := range got {
		if s.Reward != want[s.ID] {
			t.Fatalf("session %s: expected reward %d, got %d", s.ID, want[s.ID], s.Reward)
		}
	}
}

func TestNormalizeChores(t *testing.T) {
	t.Parallel()
	if got := domain.NormalizeChores(nil); !reflect.DeepEqual(got, domain.DefaultChores()) {
		t.Fatalf("expected defaults, got %v", got)
	}
	if got := domain.NormalizeChores([]any{}); len(got) != 0 {
		t.Fatalf("an empty list stays empty, got %v", got)
	}
	got := domain.NormalizeChores([]any{" Dust  shelves ", 4.0, "Dust shelves", ""})
	if !reflect.DeepEqual(got, []string{"Dust shelves"}) {
		t.Fatalf("unexpected chores %v", got)
	}
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
