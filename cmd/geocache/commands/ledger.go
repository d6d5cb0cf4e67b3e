package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/geocache/internal/core/domain"
)

func (c *CLI) newCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect <i,j> [coin-id]",
		Short: "Take a coin from a nearby cache",
		Long: "Take a coin from a nearby cache. Without a coin id the first coin in the\n" +
			"cache is taken. Cells with a negative row need a leading \"--\".",
		Example: "  geocache collect 1,0\n  geocache collect -- -1,2 -1:2#0",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := domain.ParseCell(args[0])
			if err != nil {
				return err
			}
			var coinID string
			if len(args) == 2 {
				coinID = args[1]
				if _, _, err := domain.ParseCoinID(coinID); err != nil {
					return err
				}
			}
			return c.app.Collect(cmd.Context(), cell, coinID)
		},
	}
}

func (c *CLI) newDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deposit <i,j>",
		Short:   "Put every carried coin into a nearby cache",
		Example: "  geocache deposit 0,1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := domain.ParseCell(args[0])
			if err != nil {
				return err
			}
			return c.app.Deposit(cmd.Context(), cell)
		},
	}
}
