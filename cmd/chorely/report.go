package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chorely/internal/bootstrap"
)

func newHistoryCmd(dataDir *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				sessions, err := app.ReportCLI.History(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range sessions {
					when := "(no end time)"
					if !s.EndedAt.IsZero() {
						when = s.EndedAt.Format("2006-01-02 15:04")
					}
					printf(cmd.OutOrStdout(), "%s  %-9s %s  +%4d XP  %s\n", when, s.Source, clock(s.DurationSeconds), s.XP, strings.Join(s.Chores, ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max sessions to show (0 for all)")
	return cmd
}

func newWeekCmd(dataDir *string) *cobra.Command {
	var weekKey string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Weekly totals (weeks start on Monday)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.ReportCLI.Weekly(cmd.Context(), weekKey)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				title := "Week of " + out.Label
				if out.IsCurrent {
					title += " (this week)"
				}
				printf(w, "%s\n", title)
				printf(w, "total time   %s\n", out.TotalTimeText)
				printf(w, "chores       %d\n", out.TotalChores)
				printf(w, "xp           %d\n", out.TotalXP)
				printf(w, "coins        %d\n", out.TotalCoins)
				printf(w, "sessions     %d\n", out.Sessions)
				printf(w, "avg session  %s\n", out.AverageText)
				printf(w, "top stat     %s (%s)\n", out.TopText, out.TopLabel)
				keys := make([]string, 0, len(out.Weeks))
				for _, opt := range out.Weeks {
					keys = append(keys, opt.WeekKey)
				}
				printf(w, "weeks        %s\n", strings.Join(keys, " "))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&weekKey, "key", "", "Monday date of the week, YYYY-MM-DD (default this week)")
	return cmd
}
