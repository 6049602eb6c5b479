package discipline

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

const (
	redCardThreshold    = 1
	yellowCardThreshold = 2
	matchesPerBan       = 1
)

// NextMatchFunc resolves the match that follows matchID in season order.
// ok is false when matchID is the last match of the season.
type NextMatchFunc func(ctx context.Context, matchID string) (next string, ok bool, err error)

// Evaluation is the outcome of evaluating one season's card summaries.
type Evaluation struct {
	Staged []Suspension
	Errors []string
}

// Evaluate decides which suspensions a pass must create. The red card rule is
// applied before the two-yellow rule and a player gets at most one staged
// suspension per pass. Missing next matches are reported in Errors; an error
// returned by next aborts the evaluation.
func Evaluate(ctx context.Context, seasonID string, summaries []CardSummary, next NextMatchFunc) (Evaluation, error) {
	if next == nil {
		return Evaluation{}, fmt.Errorf("next match lookup is required")
	}

	out := Evaluation{Staged: make([]Suspension, 0), Errors: make([]string, 0)}
	staged := make(map[string]Suspension, len(summaries))

	stage := func(summary CardSummary, reason Reason, triggerMatchID, notes string) error {
		startMatchID, ok, err := next(ctx, triggerMatchID)
		if err != nil {
			return fmt.Errorf("next match after %s for season player %s: %w", triggerMatchID, summary.SeasonPlayerID, err)
		}
		if !ok {
			gap := crerr.Wrapf(ErrNoNextMatch, "season player %s: %s trigger match %s", summary.SeasonPlayerID, reason, triggerMatchID)
			out.Errors = append(out.Errors, gap.Error())
			return nil
		}

		item := Suspension{
			SeasonID:       seasonID,
			SeasonPlayerID: summary.SeasonPlayerID,
			Reason:         reason,
			TriggerMatchID: triggerMatchID,
			MatchesBanned:  matchesPerBan,
			StartMatchID:   startMatchID,
			Status:         StatusActive,
			Notes:          notes,
		}
		staged[summary.SeasonPlayerID] = item
		out.Staged = append(out.Staged, item)
		return nil
	}

	for _, summary := range summaries {
		if summary.SeasonPlayerID == "" {
			continue
		}

		if summary.RedCount >= redCardThreshold && summary.LastRedMatchID != "" && !hasStaged(staged, summary.SeasonPlayerID) {
			notes := fmt.Sprintf("Sent off in match %s", summary.LastRedMatchID)
			if err := stage(summary, ReasonRedCard, summary.LastRedMatchID, notes); err != nil {
				return Evaluation{}, err
			}
		}

		if summary.YellowCount >= yellowCardThreshold && summary.LastYellowMatchID != "" && !hasStaged(staged, summary.SeasonPlayerID) {
			notes := fmt.Sprintf("%d yellow cards, latest in match %s", summary.YellowCount, summary.LastYellowMatchID)
			if err := stage(summary, ReasonTwoYellows, summary.LastYellowMatchID, notes); err != nil {
				return Evaluation{}, err
			}
		}
	}

	return out, nil
}

func hasStaged(staged map[string]Suspension, seasonPlayerID string) bool {
	_, ok := staged[seasonPlayerID]
	return ok
}
