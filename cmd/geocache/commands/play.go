package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/geocache/internal/app"
)

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Explore the world on an interactive map",
		Long: "Explore the world on an interactive map.\n\n" +
			"Arrow keys or hjkl move the player, tab selects a nearby cache, c collects,\n" +
			"d deposits and u undoes. Positions appended to the feed file move the\n" +
			"player as well. Without a terminal one status line is printed per position.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			feed, _ := cmd.Flags().GetString("feed")
			replay, _ := cmd.Flags().GetBool("replay")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Play(cmd.Context(), app.PlayOptions{
				FeedPath:   feed,
				Replay:     replay,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("feed", "f", "", "Follow positions appended to this file, one \"lat,lng\" per line")
	cmd.Flags().Bool("replay", false, "Replay the positions already in the feed file instead of following it")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
