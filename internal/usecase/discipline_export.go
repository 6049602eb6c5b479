package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/valyala/bytebufferpool"
)

var suspensionCSVHeader = []string{
	"suspension_id",
	"season_player_id",
	"player_name",
	"shirt_number",
	"team_name",
	"reason",
	"trigger_match",
	"start_match",
	"matches_banned",
	"served_matches",
	"status",
	"created_at",
}

// ExportSuspensionsCSV renders the season's suspensions as CSV with a header row.
func (s *DisciplineService) ExportSuspensionsCSV(ctx context.Context, seasonID string, status *discipline.Status) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.ExportSuspensionsCSV")
	defer span.End()

	items, err := s.ListSuspensions(ctx, seasonID, status)
	if err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(suspensionCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		trigger := item.TriggerMatchInfo
		if trigger == "" {
			trigger = item.TriggerMatchID
		}
		start := item.StartMatchInfo
		if start == "" {
			start = item.StartMatchID
		}
		record := []string{
			item.SuspensionID,
			item.SeasonPlayerID,
			item.PlayerName,
			strconv.Itoa(item.ShirtNumber),
			item.TeamName,
			string(item.Reason),
			trigger,
			start,
			strconv.Itoa(item.MatchesBanned),
			strconv.Itoa(item.ServedMatches),
			string(item.Status),
			item.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", item.SuspensionID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}
