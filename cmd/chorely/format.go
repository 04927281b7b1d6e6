package main

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	economydto "chorely/internal/modules/economy/dto"
	"chorely/internal/ui/theme"
)

// printer groups digits in XP and coin counts ("12,500 coins").
var printer = message.NewPrinter(language.English)

func printf(w io.Writer, format string, args ...any) {
	_, _ = printer.Fprintf(w, format, args...)
}

func headline(themeID, text string) string {
	return theme.NewStyles(theme.For(themeID)).Title.Render(text)
}

func printStatus(w io.Writer, s economydto.StatusOutput) {
	printf(w, "%s\n", headline(s.ActiveTheme, "chorely"))
	if s.MaxLevel {
		printf(w, "level      %d (max)\n", s.Level)
	} else {
		printf(w, "level      %d (%d/%d XP)\n", s.Level, s.XPIntoLevel, s.XPPerLevel)
	}
	printf(w, "xp         %d\n", s.TotalXP)
	printf(w, "coins      %d\n", s.TotalCoins)
	printf(w, "tokens     %d\n", s.Tokens)
	printf(w, "rebirths   %d (x%.2f)\n", s.Rebirths, s.RebirthMultiplier)
	printf(w, "gloves     %d\n", s.GoldenGloves)
	bonus := "used today"
	if s.BonusAvailable {
		bonus = "available"
	}
	printf(w, "bonus      %s\n", bonus)
	printf(w, "theme      %s\n", s.ActiveTheme)
	printf(w, "background %s\n", s.ActiveBackground)
	if s.CanRebirth {
		printf(w, "rebirth is available: chorely rebirth\n")
	}
}

func printSession(w io.Writer, s economydto.SessionOutput) {
	printf(w, "saved %s session %s: %s, +%d XP, +%d coins\n",
		s.Source, s.ID, clock(s.DurationSeconds), s.XP, s.Coins)
	if s.BonusXP > 0 {
		printf(w, "  daily bonus +%d XP\n", s.BonusXP)
	}
	if s.UsedGoldenGloves {
		printf(w, "  golden gloves used (x%.2f)\n", s.Multiplier)
	}
	if len(s.Chores) > 0 {
		printf(w, "  chores: %s\n", strings.Join(s.Chores, ", "))
	}
}

func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return printer.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
