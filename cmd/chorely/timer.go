package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chorely/internal/bootstrap"
	timerdto "chorely/internal/modules/timer/dto"
)

func newLogCmd(dataDir *string) *cobra.Command {
	var minutes float64
	var chores []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a finished session by hand",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.TimerCLI.LogManual(cmd.Context(), minutes, chores)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&minutes, "minutes", 0, "minutes spent")
	cmd.Flags().StringArrayVar(&chores, "chore", nil, "chore done (repeatable)")
	return cmd
}

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Stopwatch that survives restarts"}

	simple := func(use, short string, fn func(app *bootstrap.App, cmd *cobra.Command) (timerdto.TimerOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(*dataDir, func(app *bootstrap.App) error {
					out, err := fn(app, cmd)
					if err != nil {
						return err
					}
					printTimer(cmd, out)
					return nil
				})
			},
		}
	}

	timer.AddCommand(
		simple("start", "Start the stopwatch", func(app *bootstrap.App, cmd *cobra.Command) (timerdto.TimerOutput, error) {
			return app.TimerCLI.Start(cmd.Context())
		}),
		simple("pause", "Pause the stopwatch", func(app *bootstrap.App, cmd *cobra.Command) (timerdto.TimerOutput, error) {
			return app.TimerCLI.Pause(cmd.Context())
		}),
		simple("resume", "Resume the stopwatch", func(app *bootstrap.App, cmd *cobra.Command) (timerdto.TimerOutput, error) {
			return app.TimerCLI.Resume(cmd.Context())
		}),
		simple("status", "Show the stopwatch", func(app *bootstrap.App, cmd *cobra.Command) (timerdto.TimerOutput, error) {
			return app.TimerCLI.Status(cmd.Context())
		}),
	)

	var chores []string
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the stopwatch and save the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.TimerCLI.Stop(cmd.Context(), "", chores)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), out.Session)
				return nil
			})
		},
	}
	stop.Flags().StringArrayVar(&chores, "chore", nil, "chore done (repeatable)")

	discard := &cobra.Command{
		Use:   "discard",
		Short: "Throw the stopwatch away without saving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.TimerCLI.Discard(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "timer discarded")
				return nil
			})
		},
	}

	timer.AddCommand(stop, discard)
	return timer
}

func printTimer(cmd *cobra.Command, t timerdto.TimerOutput) {
	seconds := int((t.Elapsed.Milliseconds() + 500) / 1000)
	printf(cmd.OutOrStdout(), "timer %s %s %s (started %s)\n", t.ID, t.Status, clock(seconds), t.StartedAt.Format("15:04:05"))
}
