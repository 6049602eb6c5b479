package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
)

type suspensionTableModel struct {
	PublicID       string    `db:"public_id"`
	SeasonID       string    `db:"season_public_id"`
	SeasonPlayerID string    `db:"season_player_public_id"`
	Reason         string    `db:"reason"`
	TriggerMatchID string    `db:"trigger_match_public_id"`
	MatchesBanned  int       `db:"matches_banned"`
	StartMatchID   string    `db:"start_match_public_id"`
	ServedMatches  int       `db:"served_matches"`
	Status         string    `db:"status"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}

func suspensionToModel(item discipline.Suspension) suspensionTableModel {
	return suspensionTableModel{
		PublicID:       item.ID,
		SeasonID:       item.SeasonID,
		SeasonPlayerID: item.SeasonPlayerID,
		Reason:         string(item.Reason),
		TriggerMatchID: item.TriggerMatchID,
		MatchesBanned:  item.MatchesBanned,
		StartMatchID:   item.StartMatchID,
		ServedMatches:  item.ServedMatches,
		Status:         string(item.Status),
		Notes:          item.Notes,
		CreatedAt:      item.CreatedAt,
	}
}

func (m suspensionTableModel) toDomain() discipline.Suspension {
	return discipline.Suspension{
		ID:             m.PublicID,
		SeasonID:       m.SeasonID,
		SeasonPlayerID: m.SeasonPlayerID,
		Reason:         discipline.Reason(m.Reason),
		TriggerMatchID: m.TriggerMatchID,
		MatchesBanned:  m.MatchesBanned,
		StartMatchID:   m.StartMatchID,
		ServedMatches:  m.ServedMatches,
		Status:         discipline.Status(m.Status),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

var suspensionColumns = []string{
	"public_id",
	"season_public_id",
	"season_player_public_id",
	"reason",
	"trigger_match_public_id",
	"matches_banned",
	"start_match_public_id",
	"served_matches",
	"status",
	"notes",
	"created_at",
}

type cardSummaryRow struct {
	SeasonPlayerID    string         `db:"season_player_public_id"`
	SeasonTeamID      string         `db:"season_team_public_id"`
	YellowCount       int            `db:"yellow_count"`
	RedCount          int            `db:"red_count"`
	LastYellowMatchID sql.NullString `db:"last_yellow_match_public_id"`
	LastRedMatchID    sql.NullString `db:"last_red_match_public_id"`
}

type cardSummaryViewRow struct {
	SeasonPlayerID string `db:"season_player_public_id"`
	PlayerID       string `db:"player_public_id"`
	PlayerName     string `db:"player_name"`
	ShirtNumber    int    `db:"shirt_number"`
	TeamID         string `db:"season_team_public_id"`
	TeamName       string `db:"team_name"`
	YellowCards    int    `db:"yellow_cards"`
	RedCards       int    `db:"red_cards"`
	MatchesPlayed  int    `db:"matches_played"`
}

type suspensionViewRow struct {
	PublicID         string         `db:"public_id"`
	SeasonPlayerID   string         `db:"season_player_public_id"`
	PlayerName       string         `db:"player_name"`
	ShirtNumber      int            `db:"shirt_number"`
	TeamID           string         `db:"season_team_public_id"`
	TeamName         string         `db:"team_name"`
	Reason           string         `db:"reason"`
	TriggerMatchID   string         `db:"trigger_match_public_id"`
	TriggerMatchday  sql.NullInt32  `db:"trigger_matchday"`
	TriggerHomeTeam  sql.NullString `db:"trigger_home_team"`
	TriggerAwayTeam  sql.NullString `db:"trigger_away_team"`
	TriggerKickoffAt sql.NullTime   `db:"trigger_kickoff_at"`
	MatchesBanned    int            `db:"matches_banned"`
	StartMatchID     string         `db:"start_match_public_id"`
	StartMatchday    sql.NullInt32  `db:"start_matchday"`
	StartHomeTeam    sql.NullString `db:"start_home_team"`
	StartAwayTeam    sql.NullString `db:"start_away_team"`
	StartKickoffAt   sql.NullTime   `db:"start_kickoff_at"`
	ServedMatches    int            `db:"served_matches"`
	Status           string         `db:"status"`
	Notes            string         `db:"notes"`
	CreatedAt        time.Time      `db:"created_at"`
}

func matchLabel(matchday sql.NullInt32, home, away sql.NullString, kickoff sql.NullTime) string {
	if !matchday.Valid {
		return ""
	}
	return fixture.Label(int(matchday.Int32), home.String, away.String, kickoff.Time)
}

func (r suspensionViewRow) toDomain() discipline.SuspensionView {
	return discipline.SuspensionView{
		SuspensionID:     r.PublicID,
		SeasonPlayerID:   r.SeasonPlayerID,
		PlayerName:       r.PlayerName,
		ShirtNumber:      r.ShirtNumber,
		TeamID:           r.TeamID,
		TeamName:         r.TeamName,
		Reason:           discipline.Reason(r.Reason),
		TriggerMatchID:   r.TriggerMatchID,
		TriggerMatchInfo: matchLabel(r.TriggerMatchday, r.TriggerHomeTeam, r.TriggerAwayTeam, r.TriggerKickoffAt),
		MatchesBanned:    r.MatchesBanned,
		StartMatchID:     r.StartMatchID,
		StartMatchInfo:   matchLabel(r.StartMatchday, r.StartHomeTeam, r.StartAwayTeam, r.StartKickoffAt),
		ServedMatches:    r.ServedMatches,
		Status:           discipline.Status(r.Status),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
	}
}
