package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chorely/internal/modules/timer/domain"
	timerout "chorely/internal/modules/timer/port/out"
	apperrors "chorely/internal/platform/errors"
)

// FileActiveTimerStore keeps the running stopwatch in a JSON file so it
// survives between CLI invocations.
type FileActiveTimerStore struct {
	path string
}

func NewFileActiveTimerStore(path string) timerout.ActiveTimerStore {
	return &FileActiveTimerStore{path: path}
}

func (s *FileActiveTimerStore) SaveActive(_ context.Context, timer domain.ActiveTimer) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create timer dir: %w", err)
	}
	payload, err := json.MarshalIndent(timer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timer: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write timer: %w", err)
	}
	return nil
}

func (s *FileActiveTimerStore) LoadActive(_ context.Context) (domain.ActiveTimer, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
		}
		return domain.ActiveTimer{}, fmt.Errorf("read timer: %w", err)
	}
	timer := domain.ActiveTimer{}
	if err := json.Unmarshal(payload, &timer); err != nil {
		return domain.ActiveTimer{}, fmt.Errorf("decode timer: %w", err)
	}
	if timer.ID == "" || (timer.Status != domain.StatusRunning && timer.Status != domain.StatusPaused) {
		return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
	}
	return timer, nil
}

func (s *FileActiveTimerStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear timer: %w", err)
	}
	return nil
}
