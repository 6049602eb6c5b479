package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/riskibarqy/league-manager/internal/config"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/spf13/cobra"
)

// ContainerFactory builds the service container for one command run.
type ContainerFactory func(ctx context.Context) (*app.Container, error)

// DefaultContainerFactory loads configuration from the environment. Events are
// always disabled; the CLI runs passes directly.
func DefaultContainerFactory(logOut io.Writer) ContainerFactory {
	return func(ctx context.Context) (*app.Container, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg.EventsEnabled = false

		logger := logging.NewJSONWriter(logOut, logging.LevelWarn)
		return app.New(ctx, cfg, logger)
	}
}

// NewRootCmd assembles disciplinectl.
func NewRootCmd(factory ContainerFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "disciplinectl",
		Short: "Operate the league discipline engine",
		Long: `disciplinectl recomputes card suspensions and inspects bans for a season.
It uses the same storage as the API (STORAGE_DRIVER, DB_URL).`,
		SilenceUsage: true,
	}

	root.AddCommand(recalculateCmd(factory))
	root.AddCommand(suspensionsCmd(factory))
	root.AddCommand(checkCmd(factory))
	root.AddCommand(seedCmd(factory))

	return root
}

func withContainer(cmd *cobra.Command, factory ContainerFactory, fn func(ctx context.Context, c *app.Container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := factory(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	return fn(ctx, c)
}

var (
	okLabel   = color.New(color.FgGreen).SprintFunc()
	warnLabel = color.New(color.FgYellow).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
	dimLabel  = color.New(color.Faint).SprintFunc()
)
