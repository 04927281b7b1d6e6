package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chorely/internal/bootstrap"
	"chorely/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "chorely",
		Short:         "Chore tracker with XP, coins and a cosmetics shop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory holding chorely.yaml and the .chorely state")

	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newLogCmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newShopCmd(&dataDir))
	root.AddCommand(newRebirthCmd(&dataDir))
	root.AddCommand(newTokensCmd(&dataDir))
	root.AddCommand(newThemeCmd(&dataDir))
	root.AddCommand(newBackgroundCmd(&dataDir))
	root.AddCommand(newChoresCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newWeekCmd(&dataDir))
	root.AddCommand(newJournalCmd(&dataDir))
	root.AddCommand(newDoctorCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, os.Stderr)
}

// withApp opens the app for one command and closes the store afterwards.
func withApp(dataDir string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	runErr := fn(app)
	if err := app.Close(); err != nil && runErr == nil {
		return fmt.Errorf("close store: %w", err)
	}
	return runErr
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the chorely terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, bootstrap.RunTUI)
		},
	}
}

func newJournalCmd(dataDir *string) *cobra.Command {
	journal := &cobra.Command{Use: "journal", Short: "Markdown journal of sessions and weeks"}

	var dir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write one note per session and per week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				target := dir
				if target == "" {
					target = filepath.Join(app.Config.DataDir, "chorely-journal")
				}
				out, err := app.ReportCLI.ExportJournal(cmd.Context(), target)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d session notes and %d week notes under %s\n", len(out.SessionNotes), len(out.WeekNotes), target)
				return nil
			})
		},
	}
	export.Flags().StringVar(&dir, "dir", "", "journal root (default <data-dir>/chorely-journal)")
	journal.AddCommand(export)
	return journal
}
