package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/geocache/internal/core/domain"
)

func (c *CLI) newWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "walk <direction>...",
		Short:   "Step one cell per direction (n, s, e, w)",
		Example: "  geocache walk n n e",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := make([]domain.Direction, 0, len(args))
			for _, arg := range args {
				d, err := domain.ParseDirection(arg)
				if err != nil {
					return err
				}
				dirs = append(dirs, d)
			}
			return c.app.Walk(cmd.Context(), dirs)
		},
	}
}
