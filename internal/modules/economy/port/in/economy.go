package in

import (
	"context"

	"chorely/internal/modules/economy/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.RewardsOutput, error)
	CommitSession(ctx context.Context, input dto.CommitInput) (dto.SessionOutput, error)
	Sessions(ctx context.Context) ([]dto.SessionOutput, error)

	ListShop(ctx context.Context) ([]dto.ShopItemOutput, error)
	Buy(ctx context.Context, itemID string) (dto.BuyOutput, error)
	Rebirth(ctx context.Context) (dto.StatusOutput, error)
	DeductTokens(ctx context.Context, amount float64) (dto.DeductOutput, error)

	UseTheme(ctx context.Context, id string) (dto.StatusOutput, error)
	UseBackground(ctx context.Context, id string) (dto.StatusOutput, error)
	SetPetEnabled(ctx context.Context, enabled bool) (dto.StatusOutput, error)
	SetMusicVolume(ctx context.Context, volume float64) (dto.StatusOutput, error)
	SetMusicTrack(ctx context.Context, trackID string) (dto.StatusOutput, error)
	SetMusicPlaying(ctx context.Context, playing bool) (dto.StatusOutput, error)

	ListChores(ctx context.Context) ([]string, error)
	AddChore(ctx context.Context, name string) (dto.ChoresOutput, error)
	RemoveChore(ctx context.Context, name string) (dto.ChoresOutput, error)

	Doctor(ctx context.Context) (dto.DoctorOutput, error)
}
