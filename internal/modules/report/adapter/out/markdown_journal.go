package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chorely/internal/modules/report/domain"
	reportout "chorely/internal/modules/report/port/out"
	"chorely/internal/platform/markdown"
	"chorely/internal/platform/slug"
)

const (
	weekBlockStart = "<!-- chorely:week:start -->"
	weekBlockEnd   = "<!-- chorely:week:end -->"
)

// MarkdownJournal writes one note per session and one note per week, each
// with YAML frontmatter.
type MarkdownJournal struct{}

func NewMarkdownJournal() reportout.JournalWriter {
	return MarkdownJournal{}
}

func (MarkdownJournal) WriteSession(_ context.Context, root string, session domain.SessionRecord) (string, error) {
	date := session.StartedAt
	if date.IsZero() {
		date = session.EndedAt
	}
	dir := filepath.Join(root, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	path := filepath.Join(dir, sessionFileName(date, session))

	meta := map[string]any{
		"schema_version":     domain.SchemaVersion,
		"id":                 session.ID,
		"source":             session.Source,
		"started_at":         session.StartedAt.Format(time.RFC3339),
		"ended_at":           session.EndedAt.Format(time.RFC3339),
		"duration_seconds":   session.DurationSeconds,
		"chores":             session.Chores,
		"xp":                 session.XP,
		"coins":              session.Coins,
		"bonus_xp":           session.BonusXP,
		"multiplier":         session.Multiplier,
		"used_golden_gloves": session.UsedGoldenGloves,
	}
	var body strings.Builder
	fmt.Fprintf(&body, "# Session %s\n\n", session.EndedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&body, "- Duration: %s\n", domain.FormatClock(session.DurationSeconds))
	fmt.Fprintf(&body, "- Reward: +%d XP, +%d coins\n", session.XP, session.Coins)
	if session.BonusXP > 0 {
		fmt.Fprintf(&body, "- Daily bonus: +%d XP\n", session.BonusXP)
	}
	if session.UsedGoldenGloves {
		body.WriteString("- Golden Gloves used\n")
	}
	body.WriteString("\n## Chores\n\n")
	for _, c := range session.Chores {
		fmt.Fprintf(&body, "- [x] %s\n", c)
	}

	rendered, err := markdown.RenderFrontmatter(meta, body.String())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}

// sessionFileName ends with a short id so sessions sharing a start second and
// chore list get separate notes.
func sessionFileName(date time.Time, session domain.SessionRecord) string {
	name := date.Format("150405") + "-" + slug.Join(session.Chores, 48)
	if id := slug.Make(session.ID); session.ID != "" {
		if len(id) > 8 {
			id = strings.Trim(id[:8], "-")
		}
		name += "-" + id
	}
	return name + ".md"
}

// WriteWeek refreshes the generated block of a week note. Text outside the
// block and unknown frontmatter keys are kept.
func (MarkdownJournal) WriteWeek(_ context.Context, root string, week domain.WeekSummary) (string, error) {
	dir := filepath.Join(root, "weeks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create week dir: %w", err)
	}
	path := filepath.Join(dir, week.WeekKey+".md")

	meta := map[string]any{}
	body := fmt.Sprintf("# Week of %s\n", week.Label)
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		m, b, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr != nil {
			return "", fmt.Errorf("parse week note %s: %w", path, splitErr)
		}
		meta, body = m, b
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read week note: %w", err)
	}

	t := week.Totals
	meta["schema_version"] = domain.SchemaVersion
	meta["week_key"] = week.WeekKey
	meta["total_seconds"] = t.TotalSeconds
	meta["total_chores"] = t.TotalChores
	meta["total_xp"] = t.TotalXP
	meta["total_coins"] = t.TotalCoins
	meta["sessions"] = t.SessionCount

	generated := strings.Join([]string{
		"| Stat | Value |",
		"| --- | --- |",
		fmt.Sprintf("| Total time | %s |", domain.FormatDurationShort(float64(t.TotalSeconds))),
		fmt.Sprintf("| Total chores | %d |", t.TotalChores),
		fmt.Sprintf("| Total XP | %d |", t.TotalXP),
		fmt.Sprintf("| Total coins | %d |", t.TotalCoins),
		fmt.Sprintf("| Sessions | %d |", t.SessionCount),
		fmt.Sprintf("| Avg session | %s |", domain.FormatDurationShort(t.AverageSeconds())),
		"",
		fmt.Sprintf("Top stat: **%s**", week.Top.Text),
	}, "\n")
	body = markdown.ReplaceBlock(body, weekBlockStart, weekBlockEnd, generated)

	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write week note: %w", err)
	}
	return path, nil
}
