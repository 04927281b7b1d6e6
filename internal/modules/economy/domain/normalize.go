package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"chorely/internal/platform/clock"
	apperrors "chorely/internal/platform/errors"
)

// maxSafeInteger bounds persisted counters so that any JSON reader can
// round-trip them exactly.
const maxSafeInteger = 1<<53 - 1

// Normalize turns an arbitrary decoded value into a well-formed State. It
// never fails: each field falls back to its default independently.
// Normalize(Normalize(x)) equals Normalize(x).
func Normalize(raw any) State {
	s := DefaultState()
	if st, ok := raw.(State); ok {
		raw = toRaw(st)
	}
	in, ok := raw.(map[string]any)
	if !ok {
		return s
	}

	s.TotalXP = counter(in["totalXP"], s.TotalXP)
	s.TotalCoins = counter(in["totalCoins"], s.TotalCoins)
	s.Tokens = counter(in["tokens"], s.Tokens)
	s.Rebirths = counter(in["rebirths"], s.Rebirths)

	if v, ok := in["lastDailyBonusDate"].(string); ok {
		s.LastDailyBonusDate = v
	}

	if list, ok := in["purchases"].([]any); ok {
		s.Purchases = normalizePurchases(list)
	}

	consumables, _ := in["consumables"].(map[string]any)
	s.Consumables.GoldenGloves = counter(consumables["goldenGloves"], 0)

	unlocks, _ := in["unlocks"].(map[string]any)
	s.Unlocks.MusicPack = truthy(unlocks["musicPack"])
	s.Unlocks.PetMop = truthy(unlocks["petMop"])
	s.Unlocks.Themes = withDefault(DefaultTheme, unlocks["themes"])
	s.Unlocks.Backgrounds = withDefault(DefaultBackground, unlocks["backgrounds"])

	if v, ok := in["activeTheme"].(string); ok {
		s.ActiveTheme = v
	}
	if v, ok := in["activeBackground"].(string); ok {
		s.ActiveBackground = v
	}

	settings, _ := in["settings"].(map[string]any)
	s.Settings.PetMopEnabled = truthy(settings["petMopEnabled"]) && s.Unlocks.PetMop
	music, _ := settings["music"].(map[string]any)
	if v, ok := toNumber(music["volume"]); ok {
		s.Settings.Music.Volume = clampUnit(v)
	}
	if v, ok := music["trackId"].(string); ok {
		s.Settings.Music.TrackID = v
	}
	s.Settings.Music.IsPlaying = truthy(music["isPlaying"])

	if !s.HasTheme(s.ActiveTheme) {
		s.ActiveTheme = DefaultTheme
	}
	if !s.HasBackground(s.ActiveBackground) {
		s.ActiveBackground = DefaultBackground
	}
	return s
}

// DecodeState normalizes a stored stats record. A decode error is returned
// for reporting only; the state is always usable.
func DecodeState(b []byte) (State, error) {
	if len(b) == 0 {
		return DefaultState(), nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return DefaultState(), fmt.Errorf("decode stats: %w", err)
	}
	return Normalize(raw), nil
}

func normalizePurchases(list []any) []Purchase {
	out := make([]Purchase, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		itemID, ok := m["itemId"].(string)
		if !ok {
			continue
		}
		p := Purchase{ItemID: itemID}
		if v, ok := toNumber(m["at"]); ok && v > 0 {
			p.At = int64(math.Min(math.Floor(v), maxSafeInteger))
		}
		p.CostCoins = counter(m["costCoins"], 0)
		if note, ok := m["note"].(string); ok {
			p.Note = note
		}
		out = append(out, p)
	}
	return out
}

func NormalizeSessions(raw any, loc *time.Location) []Session {
	list, ok := raw.([]any)
	if !ok {
		return []Session{}
	}
	out := make([]Session, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, normalizeSession(m, loc))
	}
	return out
}

func normalizeSession(m map[string]any, loc *time.Location) Session {
	s := Session{
		Source:            SourceManual,
		Multiplier:        1,
		RebirthMultiplier: 1,
	}
	if v, ok := m["id"].(string); ok {
		s.ID = v
	}
	if v, ok := m["source"].(string); ok && Source(v).Valid() {
		s.Source = Source(v)
	}
	s.StartedAt = epochMs(m["startedAt"])
	s.EndedAt = epochMs(m["endedAt"])
	if v, ok := m["dateKey"].(string); ok {
		s.DateKey = v
	} else if s.EndedAt > 0 {
		s.DateKey = clock.DateKeyFromEpochMs(s.EndedAt, loc)
	}
	s.DurationSeconds = counter(m["durationSeconds"], 0)
	s.Chores = DedupeChores(stringsOf(m["chores"]))

	s.Reward = counter(m["xp"], 0)
	if _, ok := toNumber(m["xp"]); !ok {
		s.Reward = counter(m["coins"], 0)
	}
	s.BonusXP = counter(m["bonusXP"], 0)
	s.Multiplier = multiplier(m["multiplier"])
	s.RebirthMultiplier = multiplier(m["rebirthMultiplier"])
	s.UsedGoldenGloves = truthy(m["usedGoldenGloves"])
	return s
}

func DecodeSessions(b []byte, loc *time.Location) ([]Session, error) {
	if len(b) == 0 {
		return []Session{}, nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return []Session{}, fmt.Errorf("decode sessions: %w", err)
	}
	return NormalizeSessions(raw, loc), nil
}

func NormalizeChores(raw any) []string {
	if _, ok := raw.([]any); !ok {
		return DefaultChores()
	}
	return DedupeChores(stringsOf(raw))
}

func DecodeChores(b []byte) ([]string, error) {
	if len(b) == 0 {
		return DefaultChores(), nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return DefaultChores(), fmt.Errorf("decode chores: %w", err)
	}
	return NormalizeChores(raw), nil
}

func Validate(st State) error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, apperrors.Invalid(field, reason))
		}
	}
	check(st.TotalXP >= 0, "totalXP", "must not be negative")
	check(st.TotalCoins >= 0, "totalCoins", "must not be negative")
	check(st.Tokens >= 0, "tokens", "must not be negative")
	check(st.Rebirths >= 0, "rebirths", "must not be negative")
	check(st.Consumables.GoldenGloves >= 0, "consumables.goldenGloves", "must not be negative")
	check(st.HasTheme(DefaultTheme), "unlocks.themes", "missing default theme")
	check(st.HasBackground(DefaultBackground), "unlocks.backgrounds", "missing default background")
	check(!hasDuplicates(st.Unlocks.Themes), "unlocks.themes", "duplicate entries")
	check(!hasDuplicates(st.Unlocks.Backgrounds), "unlocks.backgrounds", "duplicate entries")
	check(st.HasTheme(st.ActiveTheme), "activeTheme", fmt.Sprintf("%q is not unlocked", st.ActiveTheme))
	check(st.HasBackground(st.ActiveBackground), "activeBackground", fmt.Sprintf("%q is not unlocked", st.ActiveBackground))
	check(st.Settings.Music.Volume >= 0 && st.Settings.Music.Volume <= 1, "settings.music.volume", "must be within [0,1]")
	check(!st.Settings.PetMopEnabled || st.Unlocks.PetMop, "settings.petMopEnabled", "pet mop is not unlocked")
	return errors.Join(errs...)
}

func hasDuplicates(list []string) bool {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

func withDefault(def string, raw any) []string {
	out := []string{def}
	for _, v := range stringsOf(raw) {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func stringsOf(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// counter coerces v to a non-negative whole number, or returns def when v is
// absent or not numeric.
func counter(v any, def int) int {
	n, ok := toNumber(v)
	if !ok {
		return def
	}
	n = math.Floor(n)
	if n < 0 {
		return 0
	}
	return int(math.Min(n, maxSafeInteger))
}

func epochMs(v any) int64 {
	n, ok := toNumber(v)
	if !ok || n <= 0 {
		return 0
	}
	return int64(math.Min(math.Floor(n), maxSafeInteger))
}

func multiplier(v any) float64 {
	n, ok := toNumber(v)
	if !ok || n < 1 {
		return 1
	}
	return n
}

// toNumber accepts JSON numbers, Go numeric kinds, numeric strings and
// booleans. Absent values, non-finite results and containers are rejected.
func toNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case int32:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	case bool:
		if x {
			n = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

func toRaw(st State) any {
	b, err := json.Marshal(st)
	if err != nil {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	return raw
}
