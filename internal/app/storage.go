package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-manager/internal/config"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// storage is the repository set selected by STORAGE_DRIVER.
type storage struct {
	uow      discipline.UnitOfWork
	queries  discipline.QueryRepository
	fixtures fixture.Repository
	db       *sqlx.DB
	memory   *memory.DisciplineStore
}

func (s storage) close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
		return storage{
			uow:      postgres.NewDisciplineUnitOfWork(db),
			queries:  postgres.NewDisciplineQueryRepository(db),
			fixtures: postgres.NewFixtureRepository(db),
			db:       db,
		}, nil
	case config.StorageMemory, "":
		store := memory.NewDisciplineStore(memory.SeedDataset())
		logger.Info("storage ready", "driver", config.StorageMemory, "season_id", memory.SeasonIDLiga1)
		return storage{
			uow:      store,
			queries:  store,
			fixtures: memory.NewFixtureRepository(store),
			memory:   store,
		}, nil
	default:
		return storage{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// OpenPostgres opens a traced sqlx handle and verifies connectivity.
func OpenPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBApplicationName)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
