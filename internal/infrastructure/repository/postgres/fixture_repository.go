package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
	qb "github.com/riskibarqy/league-manager/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(
		"m.public_id",
		"m.season_public_id",
		"m.matchday",
		"m.home_team_public_id",
		"m.away_team_public_id",
		"h.name AS home_team",
		"a.name AS away_team",
		"m.kickoff_at",
		"m.home_score",
		"m.away_score",
		"m.status",
	).From("matches m LEFT JOIN season_teams h ON h.public_id = m.home_team_public_id LEFT JOIN season_teams a ON a.public_id = m.away_team_public_id").
		Where(
			qb.Eq("m.season_public_id", seasonID),
			qb.IsNull("m.deleted_at"),
		).
		OrderBy("m.matchday", "m.kickoff_at", "m.public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by season query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by season: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:         row.PublicID,
			SeasonID:   row.SeasonID,
			Matchday:   row.Matchday,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeTeam:   row.HomeTeam.String,
			AwayTeam:   row.AwayTeam.String,
			KickoffAt:  row.KickoffAt,
			HomeScore:  nullInt32ToIntPtr(row.HomeScore),
			AwayScore:  nullInt32ToIntPtr(row.AwayScore),
			Status:     fixture.NormalizeStatus(row.Status),
		})
	}

	return out, nil
}
