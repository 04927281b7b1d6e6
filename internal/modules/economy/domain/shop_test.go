package domain_test

import (
	"errors"
	"testing"

	"chorely/internal/modules/economy/domain"
	apperrors "chorely/internal/platform/errors"
)

func richState(coins int) domain.State {
	st := domain.DefaultState()
	st.TotalCoins = coins
	return st
}

func TestBuyGoldenGlovesStacks(t *testing.T) {
	t.Parallel()
	st := richState(600)
	st, p, err := domain.Buy(st, domain.ItemGoldenGloves, endOfWork)
	if err != nil {
		t.Fatalf("first buy: %v", err)
	}
	st, _, err = domain.Buy(st, domain.ItemGoldenGloves, endOfWork)
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}
	if st.Consumables.GoldenGloves != 2 || st.TotalCoins != 100 {
		t.Fatalf("expected 2 gloves and 100 coins, got %d/%d", st.Consumables.GoldenGloves, st.TotalCoins)
	}
	if p.CostCoins != domain.CostGoldenGloves || p.At != endOfWork.UnixMilli() {
		t.Fatalf("unexpected purchase entry %+v", p)
	}
	if len(st.Purchases) != 2 {
		t.Fatalf("expected two log entries, got %d", len(st.Purchases))
	}
}

func TestBuyInsufficientFundsLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	st := richState(100)
	next, _, err := domain.Buy(st, domain.ItemMusicPack, endOfWork)
	if !errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if next.TotalCoins != 100 || next.Unlocks.MusicPack || len(next.Purchases) != 0 {
		t.Fatalf("state must be unchanged, got %+v", next)
	}
}

func TestBuyPermanentUnlockOnlyOnce(t *testing.T) {
	t.Parallel()
	st := richState(1000)
	st, _, err := domain.Buy(st, domain.ItemPetMop, endOfWork)
	if err != nil {
		t.Fatalf("buy pet mop: %v", err)
	}
	if !st.Unlocks.PetMop || !domain.Owned(st, domain.ItemPetMop) {
		t.Fatalf("expected pet mop unlocked")
	}
	if _, _, err := domain.Buy(st, domain.ItemPetMop, endOfWork); !errors.Is(err, apperrors.ErrAlreadyOwned) {
		t.Fatalf("expected already owned, got %v", err)
	}
	if st.TotalCoins != 650 {
		t.Fatalf("expected 650 coins left, got %d", st.TotalCoins)
	}
}

func TestBuyThemeActivatesIt(t *testing.T) {
	t.Parallel()
	st := richState(500)
	st, p, err := domain.Buy(st, domain.ThemeItemID("purple"), endOfWork)
	if err != nil {
		t.Fatalf("buy theme: %v", err)
	}
	if p.ItemID != "theme:purple" || p.CostCoins != 200 {
		t.Fatalf("unexpected purchase %+v", p)
	}
	if st.ActiveTheme != "purple" || !st.HasTheme("purple") {
		t.Fatalf("expected purple active, got %s", st.ActiveTheme)
	}
	st, _, err = domain.Buy(st, domain.BackgroundItemID("grid-pattern"), endOfWork)
	if err != nil {
		t.Fatalf("buy background: %v", err)
	}
	if st.ActiveBackground != "grid-pattern" || st.TotalCoins != 0 {
		t.Fatalf("unexpected state %+v", st)
	}
	if err := domain.Validate(st); err != nil {
		t.Fatalf("state should stay valid: %v", err)
	}
}

func TestBuyTokenIsTheOnlyWayTokensGrow(t *testing.T) {
	t.Parallel()
	st := richState(4100)
	st, p, err := domain.Buy(st, domain.ItemToken, endOfWork)
	if err != nil {
		t.Fatalf("buy token: %v", err)
	}
	if st.Tokens != 1 || p.Note != "+1 token" {
		t.Fatalf("expected one token, got %d (%+v)", st.Tokens, p)
	}
	before := st.Tokens
	st, _, _ = domain.CommitSession(st, draftAt(endOfWork, 600, "Dishes"))
	st, _, _ = domain.Buy(st, domain.ItemGoldenGloves, endOfWork)
	if st.Tokens != before {
		t.Fatalf("tokens changed outside exchange: %d -> %d", before, st.Tokens)
	}
}

func TestBuyUnknownItem(t *testing.T) {
	t.Parallel()
	if _, _, err := domain.Buy(richState(9999), "theme:neon", endOfWork); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := domain.Buy(richState(9999), "theme:default", endOfWork); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("free default theme is not sold, got %v", err)
	}
}

func TestActivateRequiresUnlock(t *testing.T) {
	t.Parallel()
	st := domain.DefaultState()
	if _, err := domain.ActivateTheme(st, "black"); !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected locked, got %v", err)
	}
	if _, err := domain.ActivateBackground(st, "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	st.Unlocks.Themes = append(st.Unlocks.Themes, "black")
	next, err := domain.ActivateTheme(st, "black")
	if err != nil || next.ActiveTheme != "black" {
		t.Fatalf("expected black active, got %s (%v)", next.ActiveTheme, err)
	}
}

func TestSettings(t *testing.T) {
	t.Parallel()
	st := domain.DefaultState()
	if _, err := domain.SetPetEnabled(st, true); !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected locked pet, got %v", err)
	}
	if _, err := domain.SetMusicTrack(st, "track-2"); !errors.Is(err, apperrors.ErrLocked) {
		t.Fatalf("expected locked music, got %v", err)
	}
	next, err := domain.SetMusicVolume(st, 1.7)
	if err != nil || next.Settings.Music.Volume != 1 {
		t.Fatalf("expected volume clamped to 1, got %v (%v)", next.Settings.Music.Volume, err)
	}

	st.Unlocks.MusicPack = true
	if _, err := domain.SetMusicTrack(st, "track-9"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected unknown track, got %v", err)
	}
	next, err = domain.SetMusicTrack(st, "track-3")
	if err != nil || next.Settings.Music.TrackID != "track-3" {
		t.Fatalf("expected track-3, got %s (%v)", next.Settings.Music.TrackID, err)
	}
	next, err = domain.SetMusicPlaying(next, true)
	if err != nil || !next.Settings.Music.IsPlaying {
		t.Fatalf("expected playing, got %v", err)
	}
}

func TestShopItemsPricing(t *testing.T) {
	t.Parallel()
	items := domain.ShopItems()
	// 4 fixed items + 9 paid themes + 5 paid backgrounds.
	if len(items) != 18 {
		t.Fatalf("expected 18 items, got %d", len(items))
	}
	it, ok := domain.FindItem("bg:triangle-pattern")
	if !ok || it.Price != 300 || it.Kind != domain.KindBackground {
		t.Fatalf("unexpected item %+v", it)
	}
}
