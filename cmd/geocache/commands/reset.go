package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/geocache/internal/app"
)

func (c *CLI) newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Regenerate the world around the origin",
		Long: "Regenerate the world around the origin. The player returns to the origin\n" +
			"with an empty inventory and every cache is minted again with fresh coin ids.\n" +
			"With --hard the save is deleted instead, which also restarts the coin ids.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			hard, _ := cmd.Flags().GetBool("hard")

			if !yes {
				yes = confirm(cmd, "Reset the world? Coins and progress are lost. [y/N] ")
			}

			return c.app.Reset(cmd.Context(), app.ResetOptions{
				Confirmed: yes,
				Hard:      hard,
			})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Bool("hard", false, "Delete the save instead of regenerating the world")
	return cmd
}

// confirm asks question on the command output and reads one answer line.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), question)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
