package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/riskibarqy/league-manager/internal/app"
	"github.com/riskibarqy/league-manager/internal/config"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryFactory(ctx context.Context) (*app.Container, error) {
	return app.New(ctx, config.Config{
		AppEnv:            config.EnvDev,
		StorageDriver:     config.StorageMemory,
		RecalcTimeout:     5 * time.Second,
		RecalcWorkerCount: 2,
	}, logging.NewNop())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	var out bytes.Buffer
	root := NewRootCmd(memoryFactory)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRecalculateCmd_SingleSeason(t *testing.T) {
	out, err := runCLI(t, "recalculate", "--season", memory.SeasonIDLiga1)
	require.NoError(t, err)
	assert.Contains(t, out, "OK "+memory.SeasonIDLiga1+" archived=0 created=3")
}

func TestRecalculateCmd_MultipleSeasons(t *testing.T) {
	out, err := runCLI(t, "recalculate", "--season", memory.SeasonIDLiga1, "--season", "empty-season")
	require.NoError(t, err)
	assert.Contains(t, out, "OK "+memory.SeasonIDLiga1+" archived=0 created=3")
	assert.Contains(t, out, "OK empty-season archived=0 created=0")
}

func TestRecalculateCmd_RequiresSeason(t *testing.T) {
	_, err := runCLI(t, "recalculate")
	require.Error(t, err)
}

func TestSuspensionsCmd_EmptyBeforePass(t *testing.T) {
	out, err := runCLI(t, "suspensions", "--season", memory.SeasonIDLiga1)
	require.NoError(t, err)
	assert.Contains(t, out, "no suspensions")
}

func TestSuspensionsCmd_RejectsUnknownStatus(t *testing.T) {
	_, err := runCLI(t, "suspensions", "--season", memory.SeasonIDLiga1, "--status", "pending")
	require.Error(t, err)
}

func TestSuspensionsCmd_CSVHeader(t *testing.T) {
	out, err := runCLI(t, "suspensions", "--season", memory.SeasonIDLiga1, "--csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "suspension_id,"), lines[0])
}

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		name   string
		player string
		match  string
		want   string
	}{
		{name: "banned", player: "sp-prb-03", match: "m04", want: "SUSPENDED sp-prb-03 is banned for m04 (RED_CARD"},
		{name: "ban served", player: "sp-prb-03", match: "m05", want: "ELIGIBLE sp-prb-03 may play m05"},
		{name: "two yellows", player: "sp-psb-23", match: "m07", want: "SUSPENDED sp-psb-23 is banned for m07 (TWO_YELLOWS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "check", "--season", memory.SeasonIDLiga1, "--match", tt.match, "--player", tt.player)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSeedCmd_RequiresPostgres(t *testing.T) {
	_, err := runCLI(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER=postgres")
}
