package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/postgres"
	"github.com/spf13/cobra"
)

func seedCmd(factory ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo season into postgres",
		Long:  "Inserts the demo season, roster, fixtures and card events. Existing rows are left untouched.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, factory, func(ctx context.Context, c *app.Container) error {
				db := c.DB()
				if db == nil {
					return fmt.Errorf("seed requires STORAGE_DRIVER=postgres")
				}
				if err := postgres.BootstrapSeed(ctx, db); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s seeded %s\n", okLabel("OK"), memory.SeasonIDLiga1)
				return nil
			})
		},
	}
}
