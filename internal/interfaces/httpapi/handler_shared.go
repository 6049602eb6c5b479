package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseStatusFilter returns nil for an empty query value.
func parseStatusFilter(value string) (*discipline.Status, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	status, err := discipline.ParseStatus(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return &status, nil
}

type recalculateSeasonsRequest struct {
	SeasonIDs []string `json:"season_ids" validate:"required,min=1,max=50,dive,required"`
}

type lineupCheckRequest struct {
	SeasonPlayerIDs []string `json:"season_player_ids" validate:"required,min=1,max=40,dive,required"`
}

type matchFinalizedRequest struct {
	SeasonID string `json:"season_id" validate:"required"`
	MatchID  string `json:"match_id" validate:"required"`
}

type recalculationResultDTO struct {
	SeasonID string   `json:"season_id"`
	Archived int      `json:"archived"`
	Created  int      `json:"created"`
	Errors   []string `json:"errors"`
}

type seasonRecalculationDTO struct {
	recalculationResultDTO
	Error string `json:"error,omitempty"`
}

type cardSummaryDTO struct {
	SeasonPlayerID string `json:"season_player_id"`
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	ShirtNumber    int    `json:"shirt_number"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	YellowCards    int    `json:"yellow_cards"`
	RedCards       int    `json:"red_cards"`
	MatchesPlayed  int    `json:"matches_played"`
}

type suspensionDTO struct {
	SuspensionID     string    `json:"suspension_id"`
	SeasonPlayerID   string    `json:"season_player_id"`
	PlayerName       string    `json:"player_name"`
	ShirtNumber      int       `json:"shirt_number"`
	TeamID           string    `json:"team_id"`
	TeamName         string    `json:"team_name"`
	Reason           string    `json:"reason"`
	TriggerMatchID   string    `json:"trigger_match_id"`
	TriggerMatchInfo string    `json:"trigger_match_info"`
	MatchesBanned    int       `json:"matches_banned"`
	StartMatchID     string    `json:"start_match_id"`
	StartMatchInfo   string    `json:"start_match_info"`
	ServedMatches    int       `json:"served_matches"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type disciplineOverviewDTO struct {
	SeasonID          string           `json:"season_id"`
	TotalYellowCards  int              `json:"total_yellow_cards"`
	TotalRedCards     int              `json:"total_red_cards"`
	Cards             []cardSummaryDTO `json:"cards"`
	ActiveSuspensions []suspensionDTO  `json:"active_suspensions"`
}

type suspensionCheckDTO struct {
	SeasonPlayerID string `json:"season_player_id"`
	MatchID        string `json:"match_id"`
	Suspended      bool   `json:"suspended"`
	Reason         string `json:"reason,omitempty"`
	SuspensionID   string `json:"suspension_id,omitempty"`
}

type suspendedSelectionDTO struct {
	SeasonPlayerID string `json:"season_player_id"`
	Reason         string `json:"reason"`
	SuspensionID   string `json:"suspension_id"`
}

type lineupCheckDTO struct {
	MatchID   string                  `json:"match_id"`
	Eligible  bool                    `json:"eligible"`
	Suspended []suspendedSelectionDTO `json:"suspended"`
}

type fixtureDTO struct {
	ID         string    `json:"id"`
	SeasonID   string    `json:"season_id"`
	Matchday   int       `json:"matchday"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	KickoffAt  time.Time `json:"kickoff_at"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	Status     string    `json:"status"`
	Label      string    `json:"label"`
}

func recalculationResultToDTO(result discipline.RecalculationResult) recalculationResultDTO {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return recalculationResultDTO{
		SeasonID: result.SeasonID,
		Archived: result.Archived,
		Created:  result.Created,
		Errors:   errs,
	}
}

func seasonRecalculationToDTO(item usecase.SeasonRecalculation) seasonRecalculationDTO {
	out := seasonRecalculationDTO{recalculationResultDTO: recalculationResultToDTO(item.Result)}
	out.SeasonID = item.SeasonID
	if item.Err != nil {
		out.Error = item.Err.Error()
	}
	return out
}

func cardSummaryToDTO(view discipline.CardSummaryView) cardSummaryDTO {
	return cardSummaryDTO{
		SeasonPlayerID: view.SeasonPlayerID,
		PlayerID:       view.PlayerID,
		PlayerName:     view.PlayerName,
		ShirtNumber:    view.ShirtNumber,
		TeamID:         view.TeamID,
		TeamName:       view.TeamName,
		YellowCards:    view.YellowCards,
		RedCards:       view.RedCards,
		MatchesPlayed:  view.MatchesPlayed,
	}
}

func cardSummariesToDTO(views []discipline.CardSummaryView) []cardSummaryDTO {
	items := make([]cardSummaryDTO, 0, len(views))
	for _, view := range views {
		items = append(items, cardSummaryToDTO(view))
	}
	return items
}

func suspensionToDTO(view discipline.SuspensionView) suspensionDTO {
	return suspensionDTO{
		SuspensionID:     view.SuspensionID,
		SeasonPlayerID:   view.SeasonPlayerID,
		PlayerName:       view.PlayerName,
		ShirtNumber:      view.ShirtNumber,
		TeamID:           view.TeamID,
		TeamName:         view.TeamName,
		Reason:           string(view.Reason),
		TriggerMatchID:   view.TriggerMatchID,
		TriggerMatchInfo: view.TriggerMatchInfo,
		MatchesBanned:    view.MatchesBanned,
		StartMatchID:     view.StartMatchID,
		StartMatchInfo:   view.StartMatchInfo,
		ServedMatches:    view.ServedMatches,
		Status:           string(view.Status),
		Notes:            view.Notes,
		CreatedAt:        view.CreatedAt,
	}
}

func suspensionsToDTO(views []discipline.SuspensionView) []suspensionDTO {
	items := make([]suspensionDTO, 0, len(views))
	for _, view := range views {
		items = append(items, suspensionToDTO(view))
	}
	return items
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         item.ID,
		SeasonID:   item.SeasonID,
		Matchday:   item.Matchday,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		KickoffAt:  item.KickoffAt,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		Status:     fixture.NormalizeStatus(item.Status),
		Label:      item.Label(),
	}
}
