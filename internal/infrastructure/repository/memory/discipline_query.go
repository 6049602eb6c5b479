package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
)

func (s *DisciplineStore) ListCardSummaryViews(_ context.Context, seasonID string) ([]discipline.CardSummaryView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	played := make(map[string]map[string]struct{})
	for _, item := range s.appearances[seasonID] {
		if _, ok := played[item.SeasonPlayerID]; !ok {
			played[item.SeasonPlayerID] = make(map[string]struct{})
		}
		played[item.SeasonPlayerID][item.MatchID] = struct{}{}
	}

	summaries := s.aggregateLocked(seasonID)
	out := make([]discipline.CardSummaryView, 0, len(summaries))
	for _, summary := range summaries {
		p := s.players[summary.SeasonPlayerID]
		out = append(out, discipline.CardSummaryView{
			SeasonPlayerID: summary.SeasonPlayerID,
			PlayerID:       p.PlayerID,
			PlayerName:     p.Name,
			ShirtNumber:    p.ShirtNumber,
			TeamID:         p.TeamID,
			TeamName:       s.teams[p.TeamID].Name,
			YellowCards:    summary.YellowCount,
			RedCards:       summary.RedCount,
			MatchesPlayed:  len(played[summary.SeasonPlayerID]),
		})
	}

	slices.SortFunc(out, func(a, b discipline.CardSummaryView) int {
		if c := cmp.Compare(b.RedCards, a.RedCards); c != 0 {
			return c
		}
		if c := cmp.Compare(b.YellowCards, a.YellowCards); c != 0 {
			return c
		}
		if c := cmp.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c
		}
		return cmp.Compare(a.SeasonPlayerID, b.SeasonPlayerID)
	})
	return out, nil
}

func (s *DisciplineStore) ListSuspensionViews(_ context.Context, seasonID string, statuses []discipline.Status) ([]discipline.SuspensionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]discipline.SuspensionView, 0)
	for _, item := range s.suspensions[seasonID] {
		if len(statuses) > 0 && !slices.Contains(statuses, item.Status) {
			continue
		}

		p := s.players[item.SeasonPlayerID]
		view := discipline.SuspensionView{
			SuspensionID:   item.ID,
			SeasonPlayerID: item.SeasonPlayerID,
			PlayerName:     p.Name,
			ShirtNumber:    p.ShirtNumber,
			TeamID:         p.TeamID,
			TeamName:       s.teams[p.TeamID].Name,
			Reason:         item.Reason,
			TriggerMatchID: item.TriggerMatchID,
			MatchesBanned:  item.MatchesBanned,
			StartMatchID:   item.StartMatchID,
			ServedMatches:  item.ServedMatches,
			Status:         item.Status,
			Notes:          item.Notes,
			CreatedAt:      item.CreatedAt,
		}
		if match, ok := s.fixtureLocked(seasonID, item.TriggerMatchID); ok {
			view.TriggerMatchInfo = match.Label()
		}
		if match, ok := s.fixtureLocked(seasonID, item.StartMatchID); ok {
			view.StartMatchInfo = match.Label()
		}
		out = append(out, view)
	}

	slices.SortFunc(out, func(a, b discipline.SuspensionView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.SuspensionID, b.SuspensionID)
	})
	return out, nil
}

func (s *DisciplineStore) ListActiveByPlayer(_ context.Context, seasonID, seasonPlayerID string) ([]discipline.Suspension, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]discipline.Suspension, 0, 1)
	for _, item := range s.suspensions[seasonID] {
		if item.SeasonPlayerID == seasonPlayerID && item.Status == discipline.StatusActive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *DisciplineStore) ListMatchOrder(_ context.Context, seasonID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.matchOrderLocked(seasonID)
	out := make([]string, 0, len(order))
	for _, item := range order {
		out = append(out, item.ID)
	}
	return out, nil
}
