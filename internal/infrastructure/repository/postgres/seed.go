package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo season when no seasons exist yet.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return SeedDataset(ctx, db, memory.SeasonIDLiga1, "Liga 1 2025/2026", memory.SeedDataset())
}

// SeedDataset inserts a season with its roster, fixtures, cards and appearances.
// Rows that already exist are left untouched.
func SeedDataset(ctx context.Context, db *sqlx.DB, seasonID, seasonName string, data memory.Dataset) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", label, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed %s: %w", label, err)
		}
		return nil
	}

	if err := exec("season "+seasonID, `
INSERT INTO seasons (public_id, name)
VALUES (:public_id, :name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
		"public_id": seasonID,
		"name":      seasonName,
	}); err != nil {
		return err
	}

	for _, t := range data.Teams {
		if err := exec("team "+t.ID, `
INSERT INTO season_teams (public_id, season_public_id, name, short_name)
VALUES (:public_id, :season_public_id, :name, :short_name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        t.ID,
			"season_public_id": t.SeasonID,
			"name":             t.Name,
			"short_name":       t.Short,
		}); err != nil {
			return err
		}
	}

	for _, p := range data.Players {
		if err := exec("player "+p.ID, `
INSERT INTO season_players (public_id, season_public_id, season_team_public_id, player_public_id, name, shirt_number)
VALUES (:public_id, :season_public_id, :season_team_public_id, :player_public_id, :name, :shirt_number)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             p.ID,
			"season_public_id":      p.SeasonID,
			"season_team_public_id": p.TeamID,
			"player_public_id":      p.PlayerID,
			"name":                  p.Name,
			"shirt_number":          p.ShirtNumber,
		}); err != nil {
			return err
		}
	}

	for _, f := range data.Fixtures {
		if err := exec("match "+f.ID, `
INSERT INTO matches (public_id, season_public_id, matchday, home_team_public_id, away_team_public_id, kickoff_at, home_score, away_score, status)
VALUES (:public_id, :season_public_id, :matchday, :home_team_public_id, :away_team_public_id, :kickoff_at, :home_score, :away_score, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           f.ID,
			"season_public_id":    f.SeasonID,
			"matchday":            f.Matchday,
			"home_team_public_id": f.HomeTeamID,
			"away_team_public_id": f.AwayTeamID,
			"kickoff_at":          f.KickoffAt,
			"home_score":          f.HomeScore,
			"away_score":          f.AwayScore,
			"status":              f.Status,
		}); err != nil {
			return err
		}
	}

	for _, c := range data.Cards {
		if err := exec("card "+c.ID, `
INSERT INTO card_events (public_id, season_public_id, season_player_public_id, match_public_id, card_type, minute)
VALUES (:public_id, :season_public_id, :season_player_public_id, :match_public_id, :card_type, :minute)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":               c.ID,
			"season_public_id":        c.SeasonID,
			"season_player_public_id": c.SeasonPlayerID,
			"match_public_id":         c.MatchID,
			"card_type":               string(c.Type),
			"minute":                  c.Minute,
		}); err != nil {
			return err
		}
	}

	for _, a := range data.Appearances {
		if err := exec("appearance "+a.SeasonPlayerID+"@"+a.MatchID, `
INSERT INTO player_appearances (season_public_id, season_player_public_id, match_public_id)
VALUES (:season_public_id, :season_player_public_id, :match_public_id)
ON CONFLICT (season_player_public_id, match_public_id) DO NOTHING`, map[string]any{
			"season_public_id":        a.SeasonID,
			"season_player_public_id": a.SeasonPlayerID,
			"match_public_id":         a.MatchID,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
