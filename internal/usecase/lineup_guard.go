package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/sourcegraph/conc/iter"
)

// SuspensionChecker is the read side lineup validation depends on.
type SuspensionChecker interface {
	IsPlayerSuspendedForMatch(ctx context.Context, seasonPlayerID, matchID, seasonID string) (discipline.SuspensionCheck, error)
}

// SuspendedSelection is a selected player who may not take part in the match.
type SuspendedSelection struct {
	SeasonPlayerID string
	Reason         discipline.Reason
	SuspensionID   string
}

// LineupGuard rejects match squads that include suspended players.
type LineupGuard struct {
	checker SuspensionChecker
}

func NewLineupGuard(checker SuspensionChecker) *LineupGuard {
	return &LineupGuard{checker: checker}
}

// CheckSelection returns the suspended players in the selection. When any are
// found the error wraps ErrConflict.
func (g *LineupGuard) CheckSelection(ctx context.Context, seasonID, matchID string, seasonPlayerIDs []string) ([]SuspendedSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupGuard.CheckSelection")
	defer span.End()

	ids := make([]string, 0, len(seasonPlayerIDs))
	seen := make(map[string]struct{}, len(seasonPlayerIDs))
	for _, raw := range seasonPlayerIDs {
		v := strings.TrimSpace(raw)
		if v == "" {
			return nil, fmt.Errorf("%w: season player id is required", ErrInvalidInput)
		}
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w: duplicate season player %s in selection", ErrInvalidInput, v)
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: selection is empty", ErrInvalidInput)
	}

	checks, err := iter.MapErr(ids, func(seasonPlayerID *string) (discipline.SuspensionCheck, error) {
		return g.checker.IsPlayerSuspendedForMatch(ctx, *seasonPlayerID, matchID, seasonID)
	})
	if err != nil {
		return nil, fmt.Errorf("check selection suspensions: %w", err)
	}

	suspended := make([]SuspendedSelection, 0)
	for i, check := range checks {
		if !check.Suspended {
			continue
		}
		suspended = append(suspended, SuspendedSelection{
			SeasonPlayerID: ids[i],
			Reason:         check.Reason,
			SuspensionID:   check.SuspensionID,
		})
	}
	if len(suspended) > 0 {
		names := make([]string, 0, len(suspended))
		for _, item := range suspended {
			names = append(names, item.SeasonPlayerID)
		}
		return suspended, fmt.Errorf("%w: suspended players selected for match %s: %s", ErrConflict, matchID, strings.Join(names, ", "))
	}

	return suspended, nil
}
