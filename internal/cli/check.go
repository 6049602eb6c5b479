package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/spf13/cobra"
)

func checkCmd(factory ContainerFactory) *cobra.Command {
	var seasonID, matchID, playerID string

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Report whether a season player is suspended for a match",
		Example: `  disciplinectl check --season idn-liga-1-2025 --match m04 --player sp-prb-03`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, factory, func(ctx context.Context, c *app.Container) error {
				// Memory storage starts from seed with no suspensions; run a
				// pass so the answer reflects the seeded cards.
				if c.MemoryStore() != nil {
					if _, err := c.Discipline.RecalculateSeason(ctx, seasonID); err != nil {
						return err
					}
				}

				check, err := c.Discipline.IsPlayerSuspendedForMatch(ctx, playerID, matchID, seasonID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !check.Suspended {
					fmt.Fprintf(out, "%s %s may play %s\n", okLabel("ELIGIBLE"), playerID, matchID)
					return nil
				}
				fmt.Fprintf(out, "%s %s is banned for %s (%s, suspension %s)\n",
					failLabel("SUSPENDED"), playerID, matchID, check.Reason, check.SuspensionID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&seasonID, "season", "", "season id")
	cmd.Flags().StringVar(&matchID, "match", "", "match id")
	cmd.Flags().StringVar(&playerID, "player", "", "season player id")
	_ = cmd.MarkFlagRequired("season")
	_ = cmd.MarkFlagRequired("match")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
