package usecase

import (
	"context"
	"fmt"
	"time"

	"chorely/internal/modules/economy/domain"
	"chorely/internal/modules/economy/dto"
	economyin "chorely/internal/modules/economy/port/in"
	"chorely/internal/modules/economy/service"
	"chorely/internal/platform/clock"
)

type Interactor struct {
	ledger *service.Ledger
}

func NewInteractor(ledger *service.Ledger) economyin.Usecase {
	return &Interactor{ledger: ledger}
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	st, err := i.ledger.Snapshot(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(st), nil
}

func (i *Interactor) Preview(ctx context.Context, input dto.PreviewInput) (dto.RewardsOutput, error) {
	endedAt := input.EndedAt
	if endedAt.IsZero() {
		endedAt = i.ledger.Now()
	}
	r, err := i.ledger.Preview(ctx, input.DurationSeconds, input.Chores, endedAt)
	if err != nil {
		return dto.RewardsOutput{}, err
	}
	return dto.RewardsOutput{
		MinutesForXP:      r.MinutesForXP,
		ChoreXP:           r.ChoreXP,
		TimeXP:            r.TimeXP,
		BonusXP:           r.BonusXP,
		BaseXP:            r.BaseXP,
		Multiplier:        r.Multiplier,
		RebirthMultiplier: r.RebirthMultiplier,
		UsedGoldenGloves:  r.UsedGoldenGloves,
		XP:                r.XP(),
		Coins:             r.Coins(),
		SessionDay:        r.SessionDay,
	}, nil
}

func (i *Interactor) CommitSession(ctx context.Context, input dto.CommitInput) (dto.SessionOutput, error) {
	session, err := i.ledger.Commit(ctx, domain.Draft{
		ID:              input.ID,
		Source:          domain.Source(input.Source),
		StartedAt:       input.StartedAt,
		EndedAt:         input.EndedAt,
		DurationSeconds: input.DurationSeconds,
		Chores:          input.Chores,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.session(session), nil
}

func (i *Interactor) Sessions(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.ledger.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, i.session(s))
	}
	return out, nil
}

func (i *Interactor) ListShop(ctx context.Context) ([]dto.ShopItemOutput, error) {
	st, err := i.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := domain.ShopItems()
	out := make([]dto.ShopItemOutput, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ShopItemOutput{
			ID:         it.ID,
			Name:       it.Name,
			Kind:       string(it.Kind),
			Price:      it.Price,
			Owned:      domain.Owned(st, it.ID),
			Affordable: st.TotalCoins >= it.Price,
		})
	}
	return out, nil
}

func (i *Interactor) Buy(ctx context.Context, itemID string) (dto.BuyOutput, error) {
	now := i.ledger.Now()
	var bought domain.Purchase
	st, err := i.ledger.Apply(ctx, "buy "+itemID, func(st domain.State) (domain.State, error) {
		next, p, err := domain.Buy(st, itemID, now)
		bought = p
		return next, err
	})
	if err != nil {
		return dto.BuyOutput{}, err
	}
	return dto.BuyOutput{Purchase: i.purchase(bought), Status: i.status(st)}, nil
}

func (i *Interactor) Rebirth(ctx context.Context) (dto.StatusOutput, error) {
	now := i.ledger.Now()
	return i.apply(ctx, "rebirth", func(st domain.State) (domain.State, error) {
		return domain.Rebirth(st, now)
	})
}

func (i *Interactor) DeductTokens(ctx context.Context, amount float64) (dto.DeductOutput, error) {
	now := i.ledger.Now()
	var deducted int
	st, err := i.ledger.Apply(ctx, "deduct tokens", func(st domain.State) (domain.State, error) {
		next, n, err := domain.DeductTokens(st, amount, now)
		deducted = n
		return next, err
	})
	if err != nil {
		return dto.DeductOutput{}, err
	}
	return dto.DeductOutput{Deducted: deducted, Status: i.status(st)}, nil
}

func (i *Interactor) UseTheme(ctx context.Context, id string) (dto.StatusOutput, error) {
	return i.apply(ctx, "use theme", func(st domain.State) (domain.State, error) {
		return domain.ActivateTheme(st, id)
	})
}

func (i *Interactor) UseBackground(ctx context.Context, id string) (dto.StatusOutput, error) {
	return i.apply(ctx, "use background", func(st domain.State) (domain.State, error) {
		return domain.ActivateBackground(st, id)
	})
}

func (i *Interactor) SetPetEnabled(ctx context.Context, enabled bool) (dto.StatusOutput, error) {
	return i.apply(ctx, "pet", func(st domain.State) (domain.State, error) {
		return domain.SetPetEnabled(st, enabled)
	})
}

func (i *Interactor) SetMusicVolume(ctx context.Context, volume float64) (dto.StatusOutput, error) {
	return i.apply(ctx, "music volume", func(st domain.State) (domain.State, error) {
		return domain.SetMusicVolume(st, volume)
	})
}

func (i *Interactor) SetMusicTrack(ctx context.Context, trackID string) (dto.StatusOutput, error) {
	return i.apply(ctx, "music track", func(st domain.State) (domain.State, error) {
		return domain.SetMusicTrack(st, trackID)
	})
}

func (i *Interactor) SetMusicPlaying(ctx context.Context, playing bool) (dto.StatusOutput, error) {
	return i.apply(ctx, "music playing", func(st domain.State) (domain.State, error) {
		return domain.SetMusicPlaying(st, playing)
	})
}

func (i *Interactor) ListChores(ctx context.Context) ([]string, error) {
	return i.ledger.Chores(ctx)
}

func (i *Interactor) AddChore(ctx context.Context, name string) (dto.ChoresOutput, error) {
	var added bool
	chores, err := i.ledger.UpdateChores(ctx, func(list []string) ([]string, error) {
		next, ok, err := domain.AddChore(list, name)
		added = ok
		return next, err
	})
	if err != nil {
		return dto.ChoresOutput{}, err
	}
	return dto.ChoresOutput{Chores: chores, Changed: added}, nil
}

func (i *Interactor) RemoveChore(ctx context.Context, name string) (dto.ChoresOutput, error) {
	chores, err := i.ledger.UpdateChores(ctx, func(list []string) ([]string, error) {
		return domain.RemoveChore(list, name)
	})
	if err != nil {
		return dto.ChoresOutput{}, err
	}
	return dto.ChoresOutput{Chores: chores, Changed: true}, nil
}

func (i *Interactor) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	issues, err := i.ledger.LoadIssues(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}
	st, err := i.ledger.Snapshot(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}
	sessions, err := i.ledger.Sessions(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}
	chores, err := i.ledger.Chores(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}

	problems := append([]string{}, issues...)
	if err := domain.Validate(st); err != nil {
		problems = append(problems, err.Error())
	}
	ids := make(map[string]struct{}, len(sessions))
	for idx, s := range sessions {
		switch {
		case s.EndedAt == 0:
			problems = append(problems, fmt.Sprintf("session #%d (%s) has no end time and is left out of weekly reports", idx, s.ID))
		case s.EndedAt < s.StartedAt:
			problems = append(problems, fmt.Sprintf("session #%d (%s) ends before it starts", idx, s.ID))
		}
		if s.Reward > 0 && len(s.Chores) == 0 {
			problems = append(problems, fmt.Sprintf("session #%d (%s) has a reward but no chores", idx, s.ID))
		}
		if s.ID == "" {
			continue
		}
		if _, dup := ids[s.ID]; dup {
			problems = append(problems, fmt.Sprintf("session id %s appears more than once", s.ID))
		}
		ids[s.ID] = struct{}{}
	}
	return dto.DoctorOutput{Sessions: len(sessions), Chores: len(chores), Problems: problems}, nil
}

func (i *Interactor) apply(ctx context.Context, op string, fn func(domain.State) (domain.State, error)) (dto.StatusOutput, error) {
	st, err := i.ledger.Apply(ctx, op, fn)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(st), nil
}

func (i *Interactor) status(st domain.State) dto.StatusOutput {
	p := domain.ProgressFor(st.TotalXP)
	today := clock.DateKey(i.ledger.Now())
	purchases := make([]dto.PurchaseOutput, 0, len(st.Purchases))
	for _, pu := range st.Purchases {
		purchases = append(purchases, i.purchase(pu))
	}
	return dto.StatusOutput{
		TotalXP:            st.TotalXP,
		TotalCoins:         st.TotalCoins,
		Tokens:             st.Tokens,
		Rebirths:           st.Rebirths,
		Level:              p.Level,
		XPIntoLevel:        p.XPIntoLevel,
		XPPerLevel:         p.XPPerLevel,
		MaxLevel:           p.Max,
		CanRebirth:         domain.CanRebirth(st),
		RebirthMultiplier:  domain.RebirthMultiplier(st.Rebirths),
		GoldenGloves:       st.Consumables.GoldenGloves,
		LastDailyBonusDate: st.LastDailyBonusDate,
		BonusAvailable:     st.LastDailyBonusDate != today,
		MusicPack:          st.Unlocks.MusicPack,
		PetMop:             st.Unlocks.PetMop,
		PetMopEnabled:      st.Settings.PetMopEnabled,
		Themes:             st.Unlocks.Themes,
		Backgrounds:        st.Unlocks.Backgrounds,
		ActiveTheme:        st.ActiveTheme,
		ActiveBackground:   st.ActiveBackground,
		Volume:             st.Settings.Music.Volume,
		TrackID:            st.Settings.Music.TrackID,
		IsPlaying:          st.Settings.Music.IsPlaying,
		Purchases:          purchases,
	}
}

func (i *Interactor) session(s domain.Session) dto.SessionOutput {
	loc := i.ledger.Location()
	out := dto.SessionOutput{
		ID:                s.ID,
		Source:            string(s.Source),
		DateKey:           s.DateKey,
		DurationSeconds:   s.DurationSeconds,
		Chores:            s.Chores,
		XP:                s.XP(),
		Coins:             s.Coins(),
		BonusXP:           s.BonusXP,
		Multiplier:        s.Multiplier,
		RebirthMultiplier: s.RebirthMultiplier,
		UsedGoldenGloves:  s.UsedGoldenGloves,
	}
	if s.StartedAt > 0 {
		out.StartedAt = clock.FromEpochMs(s.StartedAt, loc)
	}
	if s.EndedAt > 0 {
		out.EndedAt = clock.FromEpochMs(s.EndedAt, loc)
	}
	return out
}

func (i *Interactor) purchase(p domain.Purchase) dto.PurchaseOutput {
	out := dto.PurchaseOutput{ItemID: p.ItemID, CostCoins: p.CostCoins, Note: p.Note}
	if p.At > 0 {
		out.At = time.UnixMilli(p.At).In(i.ledger.Location())
	}
	return out
}
