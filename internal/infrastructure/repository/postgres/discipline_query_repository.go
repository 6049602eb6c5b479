package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	qb "github.com/riskibarqy/league-manager/internal/platform/querybuilder"
)

const cardSummaryViewsQuery = `WITH ` + seasonOrderCTE + `,
tallies AS (
	SELECT
		ce.season_player_public_id,
		COUNT(*) FILTER (WHERE ce.card_type = 'YELLOW') AS yellow_cards,
		COUNT(*) FILTER (WHERE ce.card_type = 'RED') AS red_cards
	FROM card_events ce
	JOIN season_order so ON so.public_id = ce.match_public_id
	WHERE ce.season_public_id = $1
	  AND ce.deleted_at IS NULL
	GROUP BY ce.season_player_public_id
)
SELECT
	sp.public_id AS season_player_public_id,
	sp.player_public_id,
	sp.name AS player_name,
	sp.shirt_number,
	st.public_id AS season_team_public_id,
	st.name AS team_name,
	t.yellow_cards,
	t.red_cards,
	(
		SELECT COUNT(DISTINCT pa.match_public_id)
		FROM player_appearances pa
		WHERE pa.season_public_id = $1
		  AND pa.season_player_public_id = sp.public_id
	) AS matches_played
FROM tallies t
JOIN season_players sp ON sp.public_id = t.season_player_public_id
JOIN season_teams st ON st.public_id = sp.season_team_public_id
ORDER BY t.red_cards DESC, t.yellow_cards DESC, sp.name, sp.public_id`

const suspensionViewsQuery = `SELECT
	s.public_id,
	s.season_player_public_id,
	sp.name AS player_name,
	sp.shirt_number,
	st.public_id AS season_team_public_id,
	st.name AS team_name,
	s.reason,
	s.trigger_match_public_id,
	tm.matchday AS trigger_matchday,
	th.name AS trigger_home_team,
	ta.name AS trigger_away_team,
	tm.kickoff_at AS trigger_kickoff_at,
	s.matches_banned,
	s.start_match_public_id,
	sm.matchday AS start_matchday,
	sh.name AS start_home_team,
	sa.name AS start_away_team,
	sm.kickoff_at AS start_kickoff_at,
	s.served_matches,
	s.status,
	s.notes,
	s.created_at
FROM suspensions s
JOIN season_players sp ON sp.public_id = s.season_player_public_id
JOIN season_teams st ON st.public_id = sp.season_team_public_id
LEFT JOIN matches tm ON tm.public_id = s.trigger_match_public_id
LEFT JOIN season_teams th ON th.public_id = tm.home_team_public_id
LEFT JOIN season_teams ta ON ta.public_id = tm.away_team_public_id
LEFT JOIN matches sm ON sm.public_id = s.start_match_public_id
LEFT JOIN season_teams sh ON sh.public_id = sm.home_team_public_id
LEFT JOIN season_teams sa ON sa.public_id = sm.away_team_public_id
WHERE s.season_public_id = $1
  AND (cardinality($2::text[]) = 0 OR s.status = ANY($2::text[]))
ORDER BY s.created_at DESC, s.public_id`

// DisciplineQueryRepository reads committed disciplinary state outside recompute passes.
type DisciplineQueryRepository struct {
	db *sqlx.DB
}

func NewDisciplineQueryRepository(db *sqlx.DB) *DisciplineQueryRepository {
	return &DisciplineQueryRepository{db: db}
}

func (r *DisciplineQueryRepository) ListCardSummaryViews(ctx context.Context, seasonID string) ([]discipline.CardSummaryView, error) {
	var rows []cardSummaryViewRow
	if err := r.db.SelectContext(ctx, &rows, cardSummaryViewsQuery, seasonID); err != nil {
		return nil, fmt.Errorf("select card summary views: %w", err)
	}

	out := make([]discipline.CardSummaryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, discipline.CardSummaryView{
			SeasonPlayerID: row.SeasonPlayerID,
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			ShirtNumber:    row.ShirtNumber,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			YellowCards:    row.YellowCards,
			RedCards:       row.RedCards,
			MatchesPlayed:  row.MatchesPlayed,
		})
	}
	return out, nil
}

func (r *DisciplineQueryRepository) ListSuspensionViews(ctx context.Context, seasonID string, statuses []discipline.Status) ([]discipline.SuspensionView, error) {
	filter := make([]string, 0, len(statuses))
	for _, status := range statuses {
		filter = append(filter, string(status))
	}

	var rows []suspensionViewRow
	if err := r.db.SelectContext(ctx, &rows, suspensionViewsQuery, seasonID, pq.Array(filter)); err != nil {
		return nil, fmt.Errorf("select suspension views: %w", err)
	}

	out := make([]discipline.SuspensionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DisciplineQueryRepository) ListActiveByPlayer(ctx context.Context, seasonID, seasonPlayerID string) ([]discipline.Suspension, error) {
	query, args, err := qb.Select(suspensionColumns...).From("suspensions").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("season_player_public_id", seasonPlayerID),
			qb.Eq("status", string(discipline.StatusActive)),
		).
		OrderBy("created_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active suspensions query: %w", err)
	}

	var rows []suspensionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active suspensions: %w", err)
	}

	out := make([]discipline.Suspension, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DisciplineQueryRepository) ListMatchOrder(ctx context.Context, seasonID string) ([]string, error) {
	query, args, err := qb.Select("public_id").From("matches").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
			qb.Expr("UPPER(status) NOT IN (?, ?)", "CANCELLED", "ABANDONED"),
		).
		OrderBy("matchday", "kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match order query: %w", err)
	}

	out := make([]string, 0)
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select match order: %w", err)
	}
	return out, nil
}
