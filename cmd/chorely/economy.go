package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chorely/internal/bootstrap"
)

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, coins, tokens and appearance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.Status(cmd.Context())
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func newShopCmd(dataDir *string) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "Spend coins"}

	shop.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shop items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				items, err := app.EconomyCLI.Shop(cmd.Context())
				if err != nil {
					return err
				}
				for _, it := range items {
					mark := " "
					switch {
					case it.Owned:
						mark = "✓"
					case !it.Affordable:
						mark = "·"
					}
					printf(cmd.OutOrStdout(), "%s %-28s %6d  %s\n", mark, it.ID, it.Price, it.Name)
				}
				return nil
			})
		},
	})

	shop.AddCommand(&cobra.Command{
		Use:   "buy <item>",
		Short: "Buy an item by id (see shop list)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.Buy(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "bought %s for %d coins, %d left\n", out.Purchase.ItemID, out.Purchase.CostCoins, out.Status.TotalCoins)
				return nil
			})
		},
	})
	return shop
}

func newRebirthCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rebirth",
		Short: "Reset XP at max level for a permanent multiplier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.Rebirth(cmd.Context())
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "rebirth %d complete, multiplier now x%.2f\n", out.Rebirths, out.RebirthMultiplier)
				return nil
			})
		},
	}
}

func newTokensCmd(dataDir *string) *cobra.Command {
	tokens := &cobra.Command{Use: "tokens", Short: "Token balance"}
	tokens.AddCommand(&cobra.Command{
		Use:   "deduct <n>",
		Short: "Remove whole tokens from the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.DeductTokens(cmd.Context(), amount)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "deducted %d tokens, %d left\n", out.Deducted, out.Status.Tokens)
				return nil
			})
		},
	})
	return tokens
}

func newThemeCmd(dataDir *string) *cobra.Command {
	th := &cobra.Command{Use: "theme", Short: "Color themes"}
	th.AddCommand(&cobra.Command{
		Use:   "use <id>",
		Short: "Activate an unlocked theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.UseTheme(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s\n", headline(out.ActiveTheme, "theme: "+out.ActiveTheme))
				return nil
			})
		},
	})
	return th
}

func newBackgroundCmd(dataDir *string) *cobra.Command {
	bg := &cobra.Command{Use: "background", Short: "Backgrounds"}
	bg.AddCommand(&cobra.Command{
		Use:   "use <id>",
		Short: "Activate an unlocked background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.UseBackground(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "background: %s\n", out.ActiveBackground)
				return nil
			})
		},
	})
	return bg
}

func newChoresCmd(dataDir *string) *cobra.Command {
	chores := &cobra.Command{Use: "chores", Short: "Selectable chore list"}

	chores.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List chores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				list, err := app.EconomyCLI.Chores(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range list {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			})
		},
	})

	chores.AddCommand(&cobra.Command{
		Use:   "add <name...>",
		Short: "Add a chore",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.AddChore(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !out.Changed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "already listed")
					return nil
				}
				printf(cmd.OutOrStdout(), "added, %d chores\n", len(out.Chores))
				return nil
			})
		},
	})

	chores.AddCommand(&cobra.Command{
		Use:   "remove <name...>",
		Short: "Remove a chore from the list (history is kept)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.RemoveChore(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "removed, %d chores\n", len(out.Chores))
				return nil
			})
		},
	})
	return chores
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Pet and music settings"}

	settings.AddCommand(&cobra.Command{
		Use:       "pet <on|off>",
		Short:     "Show or hide the pet mop",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := onOff(args[0])
			if err != nil {
				return err
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.SetPet(cmd.Context(), enabled)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "pet mop enabled: %t\n", out.PetMopEnabled)
				return nil
			})
		},
	})

	music := &cobra.Command{Use: "music", Short: "Music pack settings"}
	music.AddCommand(&cobra.Command{
		Use:   "volume <0..1>",
		Short: "Set the volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid volume %q", args[0])
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.SetVolume(cmd.Context(), volume)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "volume %.2f\n", out.Volume)
				return nil
			})
		},
	})
	music.AddCommand(&cobra.Command{
		Use:   "track <id>",
		Short: "Select a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.SetTrack(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "track %s\n", out.TrackID)
				return nil
			})
		},
	})
	for _, c := range []struct {
		use     string
		playing bool
	}{{"play", true}, {"pause", false}} {
		music.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: "Set the music playing flag",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(*dataDir, func(app *bootstrap.App) error {
					out, err := app.EconomyCLI.SetPlaying(cmd.Context(), c.playing)
					if err != nil {
						return err
					}
					printf(cmd.OutOrStdout(), "playing: %t\n", out.IsPlaying)
					return nil
				})
			},
		})
	}
	settings.AddCommand(music)
	return settings
}

func newDoctorCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check stored state for problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.EconomyCLI.Doctor(cmd.Context())
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%d sessions, %d chores, store %s\n", out.Sessions, out.Chores, app.Config.Store)
				if len(out.Problems) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no problems found")
					return nil
				}
				for _, p := range out.Problems {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "- "+p)
				}
				return nil
			})
		},
	}
}

func onOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", v)
}
