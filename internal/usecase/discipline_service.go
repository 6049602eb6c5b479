package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/platform/cache"
	"github.com/riskibarqy/league-manager/internal/platform/id"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/riskibarqy/league-manager/internal/platform/resilience"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultBatchWorkers = 4

// RecalculationObserver receives the outcome of every recompute pass.
type RecalculationObserver interface {
	ObserveRecalculation(seasonID string, result discipline.RecalculationResult, elapsed time.Duration, err error)
}

// SeasonRecalculation is one entry of a batch recompute.
type SeasonRecalculation struct {
	SeasonID string
	Result   discipline.RecalculationResult
	Err      error
}

// DisciplineOverview bundles the card table and active bans of a season.
type DisciplineOverview struct {
	SeasonID          string
	Cards             []discipline.CardSummaryView
	ActiveSuspensions []discipline.SuspensionView
	TotalYellowCards  int
	TotalRedCards     int
}

type DisciplineService struct {
	uow          discipline.UnitOfWork
	queries      discipline.QueryRepository
	cache        *cache.Store
	observer     RecalculationObserver
	ids          id.Generator
	logger       *logging.Logger
	locks        *resilience.KeyedMutex
	now          func() time.Time
	batchWorkers int
	passTimeout  time.Duration
}

func NewDisciplineService(
	uow discipline.UnitOfWork,
	queries discipline.QueryRepository,
	cacheStore *cache.Store,
	observer RecalculationObserver,
	ids id.Generator,
	logger *logging.Logger,
) *DisciplineService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DisciplineService{
		uow:          uow,
		queries:      queries,
		cache:        cacheStore,
		observer:     observer,
		ids:          ids,
		logger:       logger,
		locks:        resilience.NewKeyedMutex(),
		now:          time.Now,
		batchWorkers: defaultBatchWorkers,
	}
}

// WithBatchWorkers caps the worker pool used by RecalculateSeasons.
func (s *DisciplineService) WithBatchWorkers(n int) *DisciplineService {
	if n > 0 {
		s.batchWorkers = n
	}
	return s
}

// WithPassTimeout bounds a single recompute pass, excluding the wait for the
// season lock.
func (s *DisciplineService) WithPassTimeout(d time.Duration) *DisciplineService {
	if d > 0 {
		s.passTimeout = d
	}
	return s
}

// RecalculateSeason archives the season's active suspensions and rebuilds them
// from card events in one unit of work.
func (s *DisciplineService) RecalculateSeason(ctx context.Context, seasonID string) (discipline.RecalculationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.RecalculateSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return discipline.RecalculationResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("season_id", seasonID))

	unlock, err := s.locks.Lock(ctx, seasonID)
	if err != nil {
		return discipline.RecalculationResult{}, fmt.Errorf("wait for season %s recompute: %w", seasonID, err)
	}
	defer unlock()

	passCtx := ctx
	if s.passTimeout > 0 {
		var cancel context.CancelFunc
		passCtx, cancel = context.WithTimeout(ctx, s.passTimeout)
		defer cancel()
	}

	started := s.now()
	var result discipline.RecalculationResult
	err = s.uow.WithinSeason(passCtx, seasonID, func(ctx context.Context, repo discipline.Repository) error {
		out, err := s.recalculate(ctx, seasonID, repo)
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	elapsed := s.now().Sub(started)

	if s.observer != nil {
		s.observer.ObserveRecalculation(seasonID, result, elapsed, err)
	}
	if err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "discipline recompute rolled back",
			"season_id", seasonID,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return discipline.RecalculationResult{}, err
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, seasonCachePrefix(seasonID))
	}

	s.logger.InfoContext(ctx, "discipline recompute committed",
		"season_id", seasonID,
		"archived", result.Archived,
		"created", result.Created,
		"lookup_gaps", len(result.Errors),
		"duration_ms", elapsed.Milliseconds(),
	)
	for _, gap := range result.Errors {
		s.logger.WarnContext(ctx, "suspension not created", "season_id", seasonID, "reason", gap)
	}

	return result, nil
}

func (s *DisciplineService) recalculate(ctx context.Context, seasonID string, repo discipline.Repository) (discipline.RecalculationResult, error) {
	result := discipline.RecalculationResult{SeasonID: seasonID, Errors: []string{}}

	archived, err := repo.ArchiveActive(ctx, seasonID)
	if err != nil {
		return result, fmt.Errorf("archive active suspensions: %w", err)
	}
	result.Archived = archived

	summaries, err := repo.AggregateCards(ctx, seasonID)
	if err != nil {
		return result, fmt.Errorf("aggregate card events: %w", err)
	}

	evaluation, err := discipline.Evaluate(ctx, seasonID, summaries, func(ctx context.Context, matchID string) (string, bool, error) {
		return repo.NextMatchAfter(ctx, seasonID, matchID)
	})
	if err != nil {
		return result, err
	}

	createdAt := s.now().UTC()
	for _, item := range evaluation.Staged {
		suspensionID, err := s.ids.NewID()
		if err != nil {
			return result, fmt.Errorf("generate suspension id: %w", err)
		}
		item.ID = suspensionID
		item.CreatedAt = createdAt
		if err := item.Validate(); err != nil {
			return result, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if _, err := repo.Insert(ctx, item); err != nil {
			return result, fmt.Errorf("insert suspension for season player %s: %w", item.SeasonPlayerID, err)
		}
		result.Created++
	}
	result.Errors = append(result.Errors, evaluation.Errors...)

	return result, nil
}

// RecalculateSeasons runs one independent pass per distinct season on a worker
// pool. Results keep the order of first appearance in seasonIDs.
func (s *DisciplineService) RecalculateSeasons(ctx context.Context, seasonIDs []string) ([]SeasonRecalculation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.RecalculateSeasons")
	defer span.End()

	targets := make([]string, 0, len(seasonIDs))
	seen := make(map[string]struct{}, len(seasonIDs))
	for _, raw := range seasonIDs {
		seasonID := strings.TrimSpace(raw)
		if seasonID == "" {
			continue
		}
		if _, ok := seen[seasonID]; ok {
			continue
		}
		seen[seasonID] = struct{}{}
		targets = append(targets, seasonID)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}

	workers := min(s.batchWorkers, len(targets))
	p, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create recompute worker pool: %w", err)
	}
	defer p.Release()

	out := make([]SeasonRecalculation, len(targets))
	var wg sync.WaitGroup
	for i, seasonID := range targets {
		out[i].SeasonID = seasonID
		wg.Add(1)
		if err := p.Submit(func() {
			defer wg.Done()
			result, err := s.RecalculateSeason(ctx, seasonID)
			out[i].Result = result
			out[i].Err = err
		}); err != nil {
			wg.Done()
			out[i].Err = fmt.Errorf("submit recompute for season %s: %w", seasonID, err)
		}
	}
	wg.Wait()

	failed := 0
	for _, item := range out {
		if item.Err != nil {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "discipline batch recompute finished",
		"seasons", len(out),
		"failed", failed,
		"workers", workers,
	)

	return out, nil
}

func (s *DisciplineService) CardSummary(ctx context.Context, seasonID string) ([]discipline.CardSummaryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.CardSummary")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	return cachedLoad(ctx, s.cache, seasonCachePrefix(seasonID)+"cards", func(ctx context.Context) ([]discipline.CardSummaryView, error) {
		items, err := s.queries.ListCardSummaryViews(ctx, seasonID)
		if err != nil {
			return nil, fmt.Errorf("list card summaries: %w", err)
		}
		if items == nil {
			items = []discipline.CardSummaryView{}
		}
		return items, nil
	})
}

// ListSuspensions lists the season's suspensions, optionally narrowed to one status.
func (s *DisciplineService) ListSuspensions(ctx context.Context, seasonID string, status *discipline.Status) ([]discipline.SuspensionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.ListSuspensions")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	var statuses []discipline.Status
	key := seasonCachePrefix(seasonID) + "suspensions:all"
	if status != nil {
		parsed, err := discipline.ParseStatus(string(*status))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		statuses = []discipline.Status{parsed}
		key = seasonCachePrefix(seasonID) + "suspensions:" + string(parsed)
	}

	return cachedLoad(ctx, s.cache, key, func(ctx context.Context) ([]discipline.SuspensionView, error) {
		items, err := s.queries.ListSuspensionViews(ctx, seasonID, statuses)
		if err != nil {
			return nil, fmt.Errorf("list suspensions: %w", err)
		}
		if items == nil {
			items = []discipline.SuspensionView{}
		}
		return items, nil
	})
}

// IsPlayerSuspendedForMatch reports whether an active suspension of the player
// covers matchID. It always reads committed storage, never the cache.
func (s *DisciplineService) IsPlayerSuspendedForMatch(ctx context.Context, seasonPlayerID, matchID, seasonID string) (discipline.SuspensionCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.IsPlayerSuspendedForMatch")
	defer span.End()

	seasonPlayerID = strings.TrimSpace(seasonPlayerID)
	matchID = strings.TrimSpace(matchID)
	seasonID = strings.TrimSpace(seasonID)
	if seasonPlayerID == "" || matchID == "" || seasonID == "" {
		return discipline.SuspensionCheck{}, fmt.Errorf("%w: season player id, match id and season id are required", ErrInvalidInput)
	}

	active, err := s.queries.ListActiveByPlayer(ctx, seasonID, seasonPlayerID)
	if err != nil {
		return discipline.SuspensionCheck{}, fmt.Errorf("list active suspensions: %w", err)
	}
	if len(active) == 0 {
		return discipline.SuspensionCheck{}, nil
	}

	matchIDs, err := s.queries.ListMatchOrder(ctx, seasonID)
	if err != nil {
		return discipline.SuspensionCheck{}, fmt.Errorf("list season match order: %w", err)
	}

	return discipline.CheckMatch(active, discipline.NewMatchOrder(matchIDs), matchID), nil
}

func (s *DisciplineService) Overview(ctx context.Context, seasonID string) (DisciplineOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.Overview")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return DisciplineOverview{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	out := DisciplineOverview{SeasonID: seasonID}
	active := discipline.StatusActive

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		cards, err := s.CardSummary(ctx, seasonID)
		if err != nil {
			return err
		}
		out.Cards = cards
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.ListSuspensions(ctx, seasonID, &active)
		if err != nil {
			return err
		}
		out.ActiveSuspensions = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return DisciplineOverview{}, err
	}

	for _, card := range out.Cards {
		out.TotalYellowCards += card.YellowCards
		out.TotalRedCards += card.RedCards
	}
	return out, nil
}

func seasonCachePrefix(seasonID string) string {
	return "discipline:" + seasonID + ":"
}

func cachedLoad[T any](ctx context.Context, store *cache.Store, key string, load func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(ctx)
	}

	value, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return load(ctx)
	}
	return typed, nil
}
