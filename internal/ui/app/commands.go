package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	timerdto "chorely/internal/modules/timer/dto"
)

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.Status(context.Background())
		return statusMsg{status: out, err: err}
	}
}

func (m Model) loadChoresCmd(note string) tea.Cmd {
	return func() tea.Msg {
		chores, err := m.economy.Chores(context.Background())
		return choresMsg{chores: chores, note: note, err: err}
	}
}

func (m Model) loadTimerCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timers.Status(context.Background())
		return timerMsg{timer: out, err: err}
	}
}

func (m Model) loadShopCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.economy.Shop(context.Background())
		return shopMsg{items: items, err: err}
	}
}

func (m Model) loadWeekCmd(weekKey string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Weekly(context.Background(), weekKey)
		return weekMsg{week: out, err: err}
	}
}

func (m Model) previewCmd(key string, durationSeconds int, chores []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.Preview(context.Background(), durationSeconds, chores)
		return previewMsg{key: key, rewards: out, err: err}
	}
}

func (m Model) timerCmd(fn func(context.Context) (timerdto.TimerOutput, error), note string) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(context.Background())
		return timerMsg{timer: out, note: note, err: err}
	}
}

func (m Model) stopCmd(timerID string, chores []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.timers.Stop(context.Background(), timerID, chores)
		return savedMsg{session: out.Session, err: err}
	}
}

func (m Model) discardCmd() tea.Cmd {
	return func() tea.Msg {
		return timerClearedMsg{err: m.timers.Discard(context.Background())}
	}
}

func (m Model) logManualCmd(minutes float64, chores []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.timers.LogManual(context.Background(), minutes, chores)
		return savedMsg{session: out, err: err}
	}
}

func (m Model) addChoreCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.AddChore(context.Background(), name)
		if err != nil {
			return choresMsg{err: err}
		}
		note := "chore added"
		if !out.Changed {
			note = "chore already listed"
		}
		return choresMsg{chores: out.Chores, note: note}
	}
}

func (m Model) removeChoreCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.RemoveChore(context.Background(), name)
		if err != nil {
			return choresMsg{err: err}
		}
		return choresMsg{chores: out.Chores, note: "chore removed"}
	}
}

func (m Model) buyCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.Buy(context.Background(), itemID)
		if err != nil {
			return actionMsg{err: fmt.Errorf("buy %s: %w", itemID, err)}
		}
		return actionMsg{note: fmt.Sprintf("bought %s for %d coins", out.Purchase.ItemID, out.Purchase.CostCoins)}
	}
}

func (m Model) useThemeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.economy.UseTheme(context.Background(), id); err != nil {
			return actionMsg{err: fmt.Errorf("theme %s: %w", id, err)}
		}
		return actionMsg{note: "theme: " + id}
	}
}

func (m Model) useBackgroundCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.economy.UseBackground(context.Background(), id); err != nil {
			return actionMsg{err: fmt.Errorf("background %s: %w", id, err)}
		}
		return actionMsg{note: "background: " + id}
	}
}

func (m Model) rebirthCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.economy.Rebirth(context.Background())
		if err != nil {
			return actionMsg{err: fmt.Errorf("rebirth: %w", err)}
		}
		return actionMsg{note: fmt.Sprintf("reborn! rebirth %d, multiplier x%.2f", out.Rebirths, out.RebirthMultiplier)}
	}
}
