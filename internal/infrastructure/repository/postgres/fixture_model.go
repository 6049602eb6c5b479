package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	PublicID   string         `db:"public_id"`
	SeasonID   string         `db:"season_public_id"`
	Matchday   int            `db:"matchday"`
	HomeTeamID string         `db:"home_team_public_id"`
	AwayTeamID string         `db:"away_team_public_id"`
	HomeTeam   sql.NullString `db:"home_team"`
	AwayTeam   sql.NullString `db:"away_team"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	HomeScore  sql.NullInt32  `db:"home_score"`
	AwayScore  sql.NullInt32  `db:"away_score"`
	Status     string         `db:"status"`
}

func nullInt32ToIntPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}
