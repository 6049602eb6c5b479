package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	qb "github.com/riskibarqy/league-manager/internal/platform/querybuilder"
)

const aggregateCardsQuery = `WITH ` + seasonOrderCTE + `
SELECT
	ce.season_player_public_id,
	sp.season_team_public_id,
	COUNT(*) FILTER (WHERE ce.card_type = 'YELLOW') AS yellow_count,
	COUNT(*) FILTER (WHERE ce.card_type = 'RED') AS red_count,
	(ARRAY_AGG(ce.match_public_id ORDER BY so.seq DESC) FILTER (WHERE ce.card_type = 'YELLOW'))[1] AS last_yellow_match_public_id,
	(ARRAY_AGG(ce.match_public_id ORDER BY so.seq DESC) FILTER (WHERE ce.card_type = 'RED'))[1] AS last_red_match_public_id
FROM card_events ce
JOIN season_order so ON so.public_id = ce.match_public_id
JOIN season_players sp ON sp.public_id = ce.season_player_public_id
WHERE ce.season_public_id = $1
  AND ce.deleted_at IS NULL
GROUP BY ce.season_player_public_id, sp.season_team_public_id
ORDER BY ce.season_player_public_id`

const nextMatchQuery = `WITH ` + seasonOrderCTE + `
SELECT nxt.public_id
FROM season_order cur
JOIN season_order nxt ON nxt.seq = cur.seq + 1
WHERE cur.public_id = $2`

// DisciplineUnitOfWork runs recompute passes in a READ COMMITTED transaction
// holding a per-season advisory lock until commit or rollback.
type DisciplineUnitOfWork struct {
	db *sqlx.DB
}

func NewDisciplineUnitOfWork(db *sqlx.DB) *DisciplineUnitOfWork {
	return &DisciplineUnitOfWork{db: db}
}

func (u *DisciplineUnitOfWork) WithinSeason(ctx context.Context, seasonID string, fn func(ctx context.Context, repo discipline.Repository) error) error {
	tx, err := u.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx recompute discipline: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, seasonLockKey(seasonID)); err != nil {
		return fmt.Errorf("acquire season %s recompute lock: %w", seasonID, err)
	}

	if err := fn(ctx, &disciplineTxRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx recompute discipline: %w", err)
	}
	return nil
}

type disciplineTxRepository struct {
	tx *sqlx.Tx
}

func (r *disciplineTxRepository) ArchiveActive(ctx context.Context, seasonID string) (int, error) {
	query, args, err := qb.Update("suspensions").
		Set("status", string(discipline.StatusArchived)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("status", string(discipline.StatusActive)),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build archive suspensions query: %w", err)
	}

	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("archive active suspensions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read archived suspension count: %w", err)
	}
	return int(affected), nil
}

func (r *disciplineTxRepository) AggregateCards(ctx context.Context, seasonID string) ([]discipline.CardSummary, error) {
	var rows []cardSummaryRow
	if err := r.tx.SelectContext(ctx, &rows, aggregateCardsQuery, seasonID); err != nil {
		return nil, fmt.Errorf("aggregate card events: %w", err)
	}

	out := make([]discipline.CardSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, discipline.CardSummary{
			SeasonPlayerID:    row.SeasonPlayerID,
			SeasonTeamID:      row.SeasonTeamID,
			YellowCount:       row.YellowCount,
			RedCount:          row.RedCount,
			LastYellowMatchID: row.LastYellowMatchID.String,
			LastRedMatchID:    row.LastRedMatchID.String,
		})
	}
	return out, nil
}

func (r *disciplineTxRepository) NextMatchAfter(ctx context.Context, seasonID, matchID string) (string, bool, error) {
	var next string
	if err := r.tx.GetContext(ctx, &next, nextMatchQuery, seasonID, matchID); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select next match after %s: %w", matchID, err)
	}
	return next, true, nil
}

func (r *disciplineTxRepository) Insert(ctx context.Context, suspension discipline.Suspension) (string, error) {
	suspension.Status = discipline.StatusActive
	query, args, err := qb.InsertModel("suspensions", suspensionToModel(suspension), "RETURNING public_id")
	if err != nil {
		return "", fmt.Errorf("build insert suspension query: %w", err)
	}

	var id string
	if err := r.tx.GetContext(ctx, &id, query, args...); err != nil {
		return "", fmt.Errorf("insert suspension: %w", err)
	}
	return id, nil
}
