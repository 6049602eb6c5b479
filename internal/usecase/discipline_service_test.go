package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/platform/cache"
	"github.com/riskibarqy/league-manager/internal/platform/id"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seededSeason = memory.SeasonIDLiga1

func newSeededDisciplineService(t *testing.T) (*DisciplineService, *memory.DisciplineStore) {
	t.Helper()

	store := memory.NewDisciplineStore(memory.SeedDataset())
	svc := NewDisciplineService(store, store, cache.NewStore(time.Minute), nil, id.NewUUIDGenerator(), logging.NewNop())
	return svc, store
}

type activeKey struct {
	SeasonPlayerID string
	Reason         discipline.Reason
	TriggerMatchID string
	StartMatchID   string
	MatchesBanned  int
}

func activeKeys(t *testing.T, svc *DisciplineService) []activeKey {
	t.Helper()

	active := discipline.StatusActive
	items, err := svc.ListSuspensions(context.Background(), seededSeason, &active)
	require.NoError(t, err)

	out := make([]activeKey, 0, len(items))
	for _, item := range items {
		out = append(out, activeKey{
			SeasonPlayerID: item.SeasonPlayerID,
			Reason:         item.Reason,
			TriggerMatchID: item.TriggerMatchID,
			StartMatchID:   item.StartMatchID,
			MatchesBanned:  item.MatchesBanned,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeasonPlayerID < out[j].SeasonPlayerID })
	return out
}

func TestDisciplineService_RecalculateSeason_SeededSeason(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	result, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Archived)
	assert.Equal(t, 3, result.Created)
	assert.Empty(t, result.Errors)

	want := []activeKey{
		{SeasonPlayerID: "sp-bu-16", Reason: discipline.ReasonRedCard, TriggerMatchID: "m08", StartMatchID: "m09", MatchesBanned: 1},
		{SeasonPlayerID: "sp-prb-03", Reason: discipline.ReasonRedCard, TriggerMatchID: "m03", StartMatchID: "m04", MatchesBanned: 1},
		{SeasonPlayerID: "sp-psb-23", Reason: discipline.ReasonTwoYellows, TriggerMatchID: "m06", StartMatchID: "m07", MatchesBanned: 1},
	}
	if diff := cmp.Diff(want, activeKeys(t, svc)); diff != "" {
		t.Fatalf("active suspensions mismatch (-want +got):\n%s", diff)
	}
}

func TestDisciplineService_RecalculateSeason_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	first, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)
	before := activeKeys(t, svc)

	second, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)

	assert.Equal(t, first.Created, second.Archived)
	assert.Equal(t, first.Created, second.Created)
	if diff := cmp.Diff(before, activeKeys(t, svc)); diff != "" {
		t.Fatalf("second pass changed active set (-first +second):\n%s", diff)
	}

	archived := discipline.StatusArchived
	rows, err := svc.ListSuspensions(context.Background(), seededSeason, &archived)
	require.NoError(t, err)
	assert.Len(t, rows, first.Created)
}

func TestDisciplineService_RecalculateSeason_InvalidatesReadCache(t *testing.T) {
	t.Parallel()

	svc, store := newSeededDisciplineService(t)
	ctx := context.Background()

	cards, err := svc.CardSummary(ctx, seededSeason)
	require.NoError(t, err)
	require.Len(t, cards, 5)

	require.NoError(t, store.AddCardEvent(ctx, discipline.CardEvent{
		ID: "ce-100", SeasonID: seededSeason, SeasonPlayerID: "sp-psj-09", MatchID: "m07", Type: discipline.CardRed,
	}))

	cached, err := svc.CardSummary(ctx, seededSeason)
	require.NoError(t, err)
	assert.Len(t, cached, 5)

	result, err := svc.RecalculateSeason(ctx, seededSeason)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Created)

	fresh, err := svc.CardSummary(ctx, seededSeason)
	require.NoError(t, err)
	assert.Len(t, fresh, 6)
}

func TestDisciplineService_RecalculateSeason_ConcurrentPassesKeepOneActivePerPlayer(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecalculateSeason(context.Background(), seededSeason); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	keys := activeKeys(t, svc)
	require.Len(t, keys, 3)
	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k.SeasonPlayerID], "duplicate active suspension for %s", k.SeasonPlayerID)
		seen[k.SeasonPlayerID] = true
	}
}

type failingInsertUnit struct {
	inner discipline.UnitOfWork
	err   error
}

func (u failingInsertUnit) WithinSeason(ctx context.Context, seasonID string, fn func(context.Context, discipline.Repository) error) error {
	return u.inner.WithinSeason(ctx, seasonID, func(ctx context.Context, repo discipline.Repository) error {
		return fn(ctx, failingInsertRepo{Repository: repo, err: u.err})
	})
}

type failingInsertRepo struct {
	discipline.Repository
	err error
}

func (r failingInsertRepo) Insert(context.Context, discipline.Suspension) (string, error) {
	return "", r.err
}

func TestDisciplineService_RecalculateSeason_FailureKeepsPreviousActives(t *testing.T) {
	t.Parallel()

	store := memory.NewDisciplineStore(memory.SeedDataset())
	ok := NewDisciplineService(store, store, nil, nil, nil, logging.NewNop())
	_, err := ok.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)
	before := activeKeys(t, ok)

	boom := errors.New("disk full")
	failing := NewDisciplineService(failingInsertUnit{inner: store, err: boom}, store, nil, nil, nil, logging.NewNop())
	_, err = failing.RecalculateSeason(context.Background(), seededSeason)
	require.ErrorIs(t, err, boom)

	if diff := cmp.Diff(before, activeKeys(t, ok)); diff != "" {
		t.Fatalf("failed pass leaked changes (-before +after):\n%s", diff)
	}
	archived := discipline.StatusArchived
	rows, err := ok.ListSuspensions(context.Background(), seededSeason, &archived)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDisciplineService_IsPlayerSuspendedForMatch_SeededWindow(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	ctx := context.Background()
	_, err := svc.RecalculateSeason(ctx, seededSeason)
	require.NoError(t, err)

	cases := []struct {
		player string
		match  string
		want   bool
		reason discipline.Reason
	}{
		{player: "sp-prb-03", match: "m03", want: false},
		{player: "sp-prb-03", match: "m04", want: true, reason: discipline.ReasonRedCard},
		{player: "sp-prb-03", match: "m05", want: false},
		{player: "sp-psb-23", match: "m07", want: true, reason: discipline.ReasonTwoYellows},
		{player: "sp-psj-04", match: "m02", want: false},
		{player: "sp-unknown", match: "m02", want: false},
	}
	for _, tc := range cases {
		check, err := svc.IsPlayerSuspendedForMatch(ctx, tc.player, tc.match, seededSeason)
		require.NoError(t, err)
		assert.Equal(t, tc.want, check.Suspended, "%s in %s", tc.player, tc.match)
		assert.Equal(t, tc.reason, check.Reason, "%s in %s", tc.player, tc.match)
		if tc.want {
			assert.NotEmpty(t, check.SuspensionID)
		}
	}
}

func TestDisciplineService_RecalculateSeasons(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	svc.WithBatchWorkers(2)

	out, err := svc.RecalculateSeasons(context.Background(), []string{seededSeason, " ", seededSeason, "unknown-season"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, seededSeason, out[0].SeasonID)
	require.NoError(t, out[0].Err)
	assert.Equal(t, 3, out[0].Result.Created)

	assert.Equal(t, "unknown-season", out[1].SeasonID)
	require.NoError(t, out[1].Err)
	assert.Equal(t, 0, out[1].Result.Archived)
	assert.Equal(t, 0, out[1].Result.Created)

	_, err = svc.RecalculateSeasons(context.Background(), []string{" "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDisciplineService_Overview(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	_, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)

	overview, err := svc.Overview(context.Background(), seededSeason)
	require.NoError(t, err)
	assert.Equal(t, seededSeason, overview.SeasonID)
	assert.Len(t, overview.Cards, 5)
	assert.Len(t, overview.ActiveSuspensions, 3)
	assert.Equal(t, 6, overview.TotalYellowCards)
	assert.Equal(t, 2, overview.TotalRedCards)
}

func TestDisciplineService_ExportSuspensionsCSV(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	_, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)

	raw, err := svc.ExportSuspensionsCSV(context.Background(), seededSeason, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(suspensionCSVHeader, ","), lines[0])
	assert.Contains(t, string(raw), "Dusan Stevanovic")
	assert.Contains(t, string(raw), "Matchday 2: Bali United vs Persija Jakarta (2025-08-16)")
}

func TestDisciplineService_CardSummary_EmptySeason(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	items, err := svc.CardSummary(context.Background(), "unknown-season")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLineupGuard_CheckSelection(t *testing.T) {
	t.Parallel()

	svc, _ := newSeededDisciplineService(t)
	_, err := svc.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)
	guard := NewLineupGuard(svc)

	suspended, err := guard.CheckSelection(context.Background(), seededSeason, "m04", []string{"sp-prb-03", "sp-prb-08"})
	require.ErrorIs(t, err, ErrConflict)
	want := []SuspendedSelection{{SeasonPlayerID: "sp-prb-03", Reason: discipline.ReasonRedCard}}
	if diff := cmp.Diff(want, suspended, cmpopts.IgnoreFields(SuspendedSelection{}, "SuspensionID")); diff != "" {
		t.Fatalf("suspended mismatch (-want +got):\n%s", diff)
	}

	suspended, err = guard.CheckSelection(context.Background(), seededSeason, "m05", []string{"sp-prb-03", "sp-prb-08"})
	require.NoError(t, err)
	assert.Empty(t, suspended)

	_, err = guard.CheckSelection(context.Background(), seededSeason, "m05", []string{"sp-prb-03", "sp-prb-03"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

type stalledUnit struct {
	inner discipline.UnitOfWork
}

func (u stalledUnit) WithinSeason(ctx context.Context, seasonID string, fn func(context.Context, discipline.Repository) error) error {
	return u.inner.WithinSeason(ctx, seasonID, func(ctx context.Context, repo discipline.Repository) error {
		if _, err := repo.ArchiveActive(ctx, seasonID); err != nil {
			return err
		}
		<-ctx.Done()
		return ctx.Err()
	})
}

func TestDisciplineService_RecalculateSeason_PassTimeout(t *testing.T) {
	t.Parallel()

	store := memory.NewDisciplineStore(memory.SeedDataset())
	ok := NewDisciplineService(store, store, nil, nil, nil, logging.NewNop())
	_, err := ok.RecalculateSeason(context.Background(), seededSeason)
	require.NoError(t, err)
	before := activeKeys(t, ok)

	stalled := NewDisciplineService(stalledUnit{inner: store}, store, nil, nil, nil, logging.NewNop()).
		WithPassTimeout(20 * time.Millisecond)
	_, err = stalled.RecalculateSeason(context.Background(), seededSeason)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	if diff := cmp.Diff(before, activeKeys(t, ok)); diff != "" {
		t.Fatalf("timed out pass leaked changes (-before +after):\n%s", diff)
	}
}
