package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/spf13/cobra"
)

func suspensionsCmd(factory ContainerFactory) *cobra.Command {
	var (
		seasonID  string
		statusRaw string
		asCSV     bool
	)

	cmd := &cobra.Command{
		Use:   "suspensions",
		Short: "List suspensions for a season",
		Example: `  disciplinectl suspensions --season idn-liga-1-2025 --status active
  disciplinectl suspensions --season idn-liga-1-2025 --csv > bans.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status *discipline.Status
			if statusRaw != "" {
				parsed, err := discipline.ParseStatus(statusRaw)
				if err != nil {
					return err
				}
				status = &parsed
			}

			return withContainer(cmd, factory, func(ctx context.Context, c *app.Container) error {
				out := cmd.OutOrStdout()

				if asCSV {
					body, err := c.Discipline.ExportSuspensionsCSV(ctx, seasonID, status)
					if err != nil {
						return err
					}
					_, err = out.Write(body)
					return err
				}

				views, err := c.Discipline.ListSuspensions(ctx, seasonID, status)
				if err != nil {
					return err
				}
				if len(views) == 0 {
					fmt.Fprintln(out, dimLabel("no suspensions"))
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "STATUS\tPLAYER\tTEAM\tREASON\tBANNED\tTRIGGER\tSTARTS")
				for _, v := range views {
					fmt.Fprintf(w, "%s\t%s (#%d)\t%s\t%s\t%d\t%s\t%s\n",
						statusLabel(v.Status),
						v.PlayerName, v.ShirtNumber,
						v.TeamName,
						v.Reason,
						v.MatchesBanned,
						v.TriggerMatchInfo,
						v.StartMatchInfo,
					)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&seasonID, "season", "", "season id")
	cmd.Flags().StringVar(&statusRaw, "status", "", "filter by status: active, served, archived")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}

func statusLabel(status discipline.Status) string {
	switch status {
	case discipline.StatusActive:
		return failLabel(string(status))
	case discipline.StatusServed:
		return okLabel(string(status))
	default:
		return dimLabel(string(status))
	}
}
