package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-manager/internal/config"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/interfaces/eventsub"
	"github.com/riskibarqy/league-manager/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-manager/internal/observability"
	"github.com/riskibarqy/league-manager/internal/platform/cache"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

// Container holds the wired services shared by the API server and the CLI.
type Container struct {
	Config      config.Config
	Logger      *logging.Logger
	Discipline  *usecase.DisciplineService
	Fixtures    *usecase.FixtureService
	LineupGuard *usecase.LineupGuard
	Metrics     *observability.DisciplineMetrics
	Events      *eventsub.Bus

	storage storage
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var metrics *observability.DisciplineMetrics
	var observer usecase.RecalculationObserver
	if cfg.MetricsEnabled {
		metrics, err = observability.NewDisciplineMetrics()
		if err != nil {
			_ = store.close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		observer = metrics
	}

	var readCache *cache.Store
	if cfg.CacheEnabled {
		readCache = cache.NewStore(cfg.CacheTTL)
	}

	disciplineSvc := usecase.NewDisciplineService(store.uow, store.queries, readCache, observer, nil, logger.Named("discipline")).
		WithBatchWorkers(cfg.RecalcWorkerCount).
		WithPassTimeout(cfg.RecalcTimeout)

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		Discipline:  disciplineSvc,
		Fixtures:    usecase.NewFixtureService(store.fixtures),
		LineupGuard: usecase.NewLineupGuard(disciplineSvc),
		Metrics:     metrics,
		storage:     store,
	}

	if cfg.EventsEnabled {
		busCfg := eventsub.Config{MaxRetries: cfg.EventsMaxRetries}
		if metrics != nil {
			busCfg.Registerer = metrics.Registry()
		}
		bus, err := eventsub.NewBus(busCfg, disciplineSvc, logger)
		if err != nil {
			_ = store.close()
			return nil, fmt.Errorf("create event bus: %w", err)
		}
		c.Events = bus
	}

	return c, nil
}

// DB returns the postgres handle, or nil for the memory driver.
func (c *Container) DB() *sqlx.DB {
	return c.storage.db
}

// MemoryStore returns the seeded store when running on the memory driver.
func (c *Container) MemoryStore() *memory.DisciplineStore {
	return c.storage.memory
}

// RunEvents consumes match events until ctx is cancelled. It is a no-op when
// events are disabled.
func (c *Container) RunEvents(ctx context.Context) error {
	if c.Events == nil {
		return nil
	}
	return c.Events.Run(ctx)
}

func (c *Container) NewHTTPServer() (*http.Server, error) {
	if c.Config.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var publisher httpapi.MatchEventPublisher
	if c.Events != nil {
		publisher = c.Events.Publisher()
	}
	var metricsHandler http.Handler
	if c.Metrics != nil {
		metricsHandler = c.Metrics.Handler()
	}

	handler := httpapi.NewHandler(c.Discipline, c.Fixtures, c.LineupGuard, publisher, c.Logger)
	router := httpapi.NewRouter(handler, c.Logger, httpapi.RouterConfig{
		CORSAllowedOrigins: c.Config.CORSAllowedOrigins,
		AdminToken:         c.Config.AdminToken,
		Metrics:            metricsHandler,
	})

	return &http.Server{
		Addr:         c.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  c.Config.ReadTimeout,
		WriteTimeout: c.Config.WriteTimeout,
	}, nil
}

func (c *Container) Close() error {
	var errs []error
	if c.Events != nil {
		errs = append(errs, c.Events.Close())
	}
	errs = append(errs, c.storage.close())
	return errors.Join(errs...)
}
