package in

import (
	"context"

	"chorely/internal/modules/economy/dto"
	economyin "chorely/internal/modules/economy/port/in"
)

type CLIHandler struct {
	usecase economyin.Usecase
}

func NewCLIHandler(usecase economyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Preview(ctx context.Context, durationSeconds int, chores []string) (dto.RewardsOutput, error) {
	return h.usecase.Preview(ctx, dto.PreviewInput{DurationSeconds: durationSeconds, Chores: chores})
}

func (h CLIHandler) Shop(ctx context.Context) ([]dto.ShopItemOutput, error) {
	return h.usecase.ListShop(ctx)
}

func (h CLIHandler) Buy(ctx context.Context, itemID string) (dto.BuyOutput, error) {
	return h.usecase.Buy(ctx, itemID)
}

func (h CLIHandler) Rebirth(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Rebirth(ctx)
}

func (h CLIHandler) DeductTokens(ctx context.Context, amount float64) (dto.DeductOutput, error) {
	return h.usecase.DeductTokens(ctx, amount)
}

func (h CLIHandler) UseTheme(ctx context.Context, id string) (dto.StatusOutput, error) {
	return h.usecase.UseTheme(ctx, id)
}

func (h CLIHandler) UseBackground(ctx context.Context, id string) (dto.StatusOutput, error) {
	return h.usecase.UseBackground(ctx, id)
}

func (h CLIHandler) SetPet(ctx context.Context, enabled bool) (dto.StatusOutput, error) {
	return h.usecase.SetPetEnabled(ctx, enabled)
}

func (h CLIHandler) SetVolume(ctx context.Context, volume float64) (dto.StatusOutput, error) {
	return h.usecase.SetMusicVolume(ctx, volume)
}

func (h CLIHandler) SetTrack(ctx context.Context, trackID string) (dto.StatusOutput, error) {
	return h.usecase.SetMusicTrack(ctx, trackID)
}

func (h CLIHandler) SetPlaying(ctx context.Context, playing bool) (dto.StatusOutput, error) {
	return h.usecase.SetMusicPlaying(ctx, playing)
}

func (h CLIHandler) Chores(ctx context.Context) ([]string, error) {
	return h.usecase.ListChores(ctx)
}

func (h CLIHandler) AddChore(ctx context.Context, name string) (dto.ChoresOutput, error) {
	return h.usecase.AddChore(ctx, name)
}

func (h CLIHandler) RemoveChore(ctx context.Context, name string) (dto.ChoresOutput, error) {
	return h.usecase.RemoveChore(ctx, name)
}

func (h CLIHandler) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}
