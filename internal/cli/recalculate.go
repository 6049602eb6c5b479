package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/spf13/cobra"
)

func recalculateCmd(factory ContainerFactory) *cobra.Command {
	var seasons []string

	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Archive and rebuild active suspensions for one or more seasons",
		Example: `  disciplinectl recalculate --season idn-liga-1-2025
  disciplinectl recalculate --season s1 --season s2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, factory, func(ctx context.Context, c *app.Container) error {
				out := cmd.OutOrStdout()

				if len(seasons) == 1 {
					result, err := c.Discipline.RecalculateSeason(ctx, seasons[0])
					if err != nil {
						fmt.Fprintf(out, "%s %s: %v\n", failLabel("FAILED"), seasons[0], err)
						return err
					}
					printRecalculation(out, result)
					return nil
				}

				results, err := c.Discipline.RecalculateSeasons(ctx, seasons)
				if err != nil {
					return err
				}
				failed := 0
				for _, item := range results {
					if item.Err != nil {
						failed++
						fmt.Fprintf(out, "%s %s: %v\n", failLabel("FAILED"), item.SeasonID, item.Err)
						continue
					}
					printRecalculation(out, item.Result)
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d season(s) failed", failed, len(results))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&seasons, "season", nil, "season id to recalculate (repeatable)")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}

func printRecalculation(out io.Writer, result discipline.RecalculationResult) {
	fmt.Fprintf(out, "%s %s archived=%d created=%d\n", okLabel("OK"), result.SeasonID, result.Archived, result.Created)
	for _, gap := range result.Errors {
		fmt.Fprintf(out, "   %s %s\n", warnLabel("gap"), gap)
	}
}
