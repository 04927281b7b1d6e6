package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	apperrors "chorely/internal/platform/errors"
)

// Buy spends the item price and only then grants the item. Permanent items
// that are already owned are rejected before any coins move.
func Buy(st State, itemID string, now time.Time) (State, Purchase, error) {
	item, ok := FindItem(itemID)
	if !ok {
		return st, Purchase{}, fmt.Errorf("shop item %q: %w", itemID, apperrors.ErrNotFound)
	}
	if owned(st, item) {
		return st, Purchase{}, fmt.Errorf("%s: %w", item.Name, apperrors.ErrAlreadyOwned)
	}

	next, err := SpendCoins(st, item.Price)
	if err != nil {
		return st, Purchase{}, err
	}

	p := Purchase{ItemID: item.ID, At: now.UnixMilli(), CostCoins: item.Price}
	switch item.Kind {
	case KindConsumable:
		next.Consumables.GoldenGloves++
	case KindUnlock:
		if item.ID == ItemPetMop {
			next.Unlocks.PetMop = true
		} else {
			next.Unlocks.MusicPack = true
		}
	case KindExchange:
		next.Tokens++
		p.Note = "+1 token"
	case KindTheme:
		id := strings.TrimPrefix(item.ID, themePrefix)
		next.Unlocks.Themes = append(slices.Clip(next.Unlocks.Themes), id)
		next.ActiveTheme = id
	case KindBackground:
		id := strings.TrimPrefix(item.ID, backgroundPrefix)
		next.Unlocks.Backgrounds = append(slices.Clip(next.Unlocks.Backgrounds), id)
		next.ActiveBackground = id
	}
	next = next.appendPurchase(p)
	return next, p, nil
}

func owned(st State, item Item) bool {
	switch item.Kind {
	case KindUnlock:
		if item.ID == ItemPetMop {
			return st.Unlocks.PetMop
		}
		return st.Unlocks.MusicPack
	case KindTheme:
		return st.HasTheme(strings.TrimPrefix(item.ID, themePrefix))
	case KindBackground:
		return st.HasBackground(strings.TrimPrefix(item.ID, backgroundPrefix))
	}
	return false
}

func Owned(st State, itemID string) bool {
	item, ok := FindItem(itemID)
	return ok && owned(st, item)
}

func ActivateTheme(st State, id string) (State, error) {
	if _, ok := FindTheme(id); !ok {
		return st, fmt.Errorf("theme %q: %w", id, apperrors.ErrNotFound)
	}
	if !st.HasTheme(id) {
		return st, fmt.Errorf("theme %q: %w", id, apperrors.ErrLocked)
	}
	next := st.Clone()
	next.ActiveTheme = id
	return next, nil
}

func ActivateBackground(st State, id string) (State, error) {
	if _, ok := FindBackground(id); !ok {
		return st, fmt.Errorf("background %q: %w", id, apperrors.ErrNotFound)
	}
	if !st.HasBackground(id) {
		return st, fmt.Errorf("background %q: %w", id, apperrors.ErrLocked)
	}
	next := st.Clone()
	next.ActiveBackground = id
	return next, nil
}

func SetPetEnabled(st State, enabled bool) (State, error) {
	if enabled && !st.Unlocks.PetMop {
		return st, fmt.Errorf("pet mop: %w", apperrors.ErrLocked)
	}
	next := st.Clone()
	next.Settings.PetMopEnabled = enabled
	return next, nil
}

func SetMusicVolume(st State, volume float64) (State, error) {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return st, apperrors.Invalid("volume", "must be a finite number")
	}
	next := st.Clone()
	next.Settings.Music.Volume = clampUnit(volume)
	return next, nil
}

func SetMusicTrack(st State, trackID string) (State, error) {
	if !st.Unlocks.MusicPack {
		return st, fmt.Errorf("music pack: %w", apperrors.ErrLocked)
	}
	if _, ok := FindTrack(trackID); !ok {
		return st, fmt.Errorf("track %q: %w", trackID, apperrors.ErrNotFound)
	}
	next := st.Clone()
	next.Settings.Music.TrackID = trackID
	return next, nil
}

func SetMusicPlaying(st State, playing bool) (State, error) {
	if playing && !st.Unlocks.MusicPack {
		return st, fmt.Errorf("music pack: %w", apperrors.ErrLocked)
	}
	next := st.Clone()
	next.Settings.Music.IsPlaying = playing
	return next, nil
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
