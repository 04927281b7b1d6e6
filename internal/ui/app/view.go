package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chorely/internal/ui/theme"
)

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = lipgloss.NewStyle().Height(contentH).Render(m.activeView())
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar))
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabShop:
		return m.renderShop()
	case tabWeek:
		return m.renderWeek()
	default:
		return m.renderTimer()
	}
}

func (m Model) renderHeader() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = m.styles.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = m.styles.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "chorely  " + strings.Join(parts, m.styles.Muted.Render(" │ "))

	s := m.status
	levelLine := fmt.Sprintf("Lv %d ", s.Level)
	if s.MaxLevel {
		levelLine += m.level.ViewAs(1) + " MAX"
	} else {
		fraction := 0.0
		if s.XPPerLevel > 0 {
			fraction = float64(s.XPIntoLevel) / float64(s.XPPerLevel)
		}
		levelLine += m.level.ViewAs(fraction) + fmt.Sprintf(" %d/%d XP", s.XPIntoLevel, s.XPPerLevel)
	}
	levelLine += fmt.Sprintf("   %d coins   %d tokens   gloves %d   rebirths %d (x%.2f)",
		s.TotalCoins, s.Tokens, s.GoldenGloves, s.Rebirths, s.RebirthMultiplier)
	if s.BonusAvailable {
		levelLine += "   " + m.styles.Good.Render("daily bonus ready")
	}
	if s.CanRebirth {
		levelLine += "   " + m.styles.Hot.Render("rebirth available")
	}

	lines := []string{
		m.styles.Bar.Width(m.width).Render(bar),
		levelLine,
	}
	if strip := theme.Strip(s.ActiveBackground, m.width); strip != "" {
		lines = append(lines, m.styles.Muted.Render(strip))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.flash
	if m.hasTimer {
		left = m.styles.Hot.Render("● "+clockText(m.elapsedSeconds())) + "  " + left
	}
	right := m.styles.Muted.Render("?:help  tab:switch  ::command  q:quit")
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return "\n" + m.styles.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

func (m Model) renderTimer() string {
	var list strings.Builder
	list.WriteString(m.styles.Title.Render("Chores") + "\n\n")
	if len(m.chores) == 0 {
		list.WriteString(m.styles.Muted.Render("no chores yet, try :add Dishes") + "\n")
	}
	for i, c := range m.chores {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Hot.Render("> ")
		}
		box := "[ ]"
		if m.selected[c] {
			box = m.styles.Good.Render("[x]")
		}
		fmt.Fprintf(&list, "%s%s %s\n", cursor, box, c)
	}

	var watch strings.Builder
	watch.WriteString(m.styles.Title.Render("Stopwatch") + "\n\n")
	state := "idle"
	if m.hasTimer {
		state = m.timer.Status
	}
	watch.WriteString(m.styles.Hot.Render(clockText(m.elapsedSeconds())) + "  " + m.styles.Muted.Render(state) + "\n\n")

	p := m.preview
	fmt.Fprintf(&watch, "Chores  +%d XP\n", p.ChoreXP)
	fmt.Fprintf(&watch, "Time    +%d XP (%d min)\n", p.TimeXP, p.MinutesForXP)
	if p.BonusXP > 0 {
		fmt.Fprintf(&watch, "Bonus   +%d XP\n", p.BonusXP)
	}
	if p.Multiplier > 1 {
		fmt.Fprintf(&watch, "Boost   x%.2f", p.Multiplier)
		if p.UsedGoldenGloves {
			watch.WriteString(" (golden gloves)")
		}
		watch.WriteString("\n")
	}
	watch.WriteString(m.styles.Good.Render(fmt.Sprintf("Total   +%d XP · +%d coins", p.XP, p.Coins)) + "\n")

	half := max(24, m.width/2-2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.PaneActive.Width(half).Render(list.String()),
		m.styles.Pane.Width(half).Render(watch.String()),
	)
}

func (m Model) renderShop() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Shop") + m.styles.Muted.Render(fmt.Sprintf("  %d coins", m.status.TotalCoins)) + "\n\n")
	for i, it := range m.shop {
		cursor := "  "
		if i == m.shopCursor {
			cursor = m.styles.Hot.Render("> ")
		}
		tag := fmt.Sprintf("%5d", it.Price)
		switch {
		case it.Owned:
			tag = m.styles.Good.Render("owned")
		case !it.Affordable:
			tag = m.styles.Muted.Render(tag)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, tag, it.Name)
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter buys, or activates an owned theme/background"))
	return m.styles.Pane.Width(max(40, m.width-4)).Render(b.String())
}

func (m Model) renderWeek() string {
	w := m.week
	var b strings.Builder
	title := "Week of " + w.Label
	if w.IsCurrent {
		title += " (this week)"
	}
	b.WriteString(m.styles.Title.Render(title) + "\n\n")
	fmt.Fprintf(&b, "Total time    %s\n", w.TotalTimeText)
	fmt.Fprintf(&b, "Chores        %d\n", w.TotalChores)
	fmt.Fprintf(&b, "XP            %d\n", w.TotalXP)
	fmt.Fprintf(&b, "Coins         %d\n", w.TotalCoins)
	fmt.Fprintf(&b, "Sessions      %d\n", w.Sessions)
	fmt.Fprintf(&b, "Avg session   %s\n\n", w.AverageText)
	if w.TopLabel != "" {
		b.WriteString(m.styles.Hot.Render("Top: "+w.TopText) + "\n\n")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("←/→ to browse %d weeks", len(w.Weeks))))
	return m.styles.Pane.Width(max(40, m.width-4)).Render(b.String())
}

func clockText(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
