package discipline

import (
	"fmt"
	"strings"
	"time"
)

// CardType is the colour of a card issued during a match.
type CardType string

const (
	CardYellow CardType = "YELLOW"
	CardRed    CardType = "RED"
)

// Reason names the rule that raised a suspension.
type Reason string

const (
	ReasonRedCard    Reason = "RED_CARD"
	ReasonTwoYellows Reason = "TWO_YELLOWS"
)

// Status is the lifecycle state of a suspension row.
type Status string

const (
	StatusActive   Status = "active"
	StatusServed   Status = "served"
	StatusArchived Status = "archived"
)

var AllStatuses = []Status{StatusActive, StatusServed, StatusArchived}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusActive, StatusServed, StatusArchived:
		return status, nil
	default:
		return "", fmt.Errorf("invalid suspension status %q", value)
	}
}

// CardEvent is a yellow or red card issued to a season player in one match.
type CardEvent struct {
	ID             string
	SeasonID       string
	SeasonPlayerID string
	MatchID        string
	Type           CardType
	Minute         int
}

// CardSummary is the per-player card tally for a season, rebuilt on every pass.
type CardSummary struct {
	SeasonPlayerID    string
	SeasonTeamID      string
	YellowCount       int
	RedCount          int
	LastYellowMatchID string
	LastRedMatchID    string
}

// Suspension is a match ban raised by a recompute pass.
type Suspension struct {
	ID             string
	SeasonID       string
	SeasonPlayerID string
	Reason         Reason
	TriggerMatchID string
	MatchesBanned  int
	StartMatchID   string
	ServedMatches  int
	Status         Status
	Notes          string
	CreatedAt      time.Time
}

func (s Suspension) Validate() error {
	if s.SeasonID == "" {
		return fmt.Errorf("suspension season id is required")
	}
	if s.SeasonPlayerID == "" {
		return fmt.Errorf("suspension season player id is required")
	}
	switch s.Reason {
	case ReasonRedCard, ReasonTwoYellows:
	default:
		return fmt.Errorf("invalid suspension reason: %s", s.Reason)
	}
	if s.TriggerMatchID == "" || s.StartMatchID == "" {
		return fmt.Errorf("suspension trigger and start match are required")
	}
	if s.TriggerMatchID == s.StartMatchID {
		return fmt.Errorf("suspension start match must follow trigger match %s", s.TriggerMatchID)
	}
	if s.MatchesBanned < 1 {
		return fmt.Errorf("suspension must ban at least one match")
	}
	if s.ServedMatches < 0 {
		return fmt.Errorf("served matches cannot be negative")
	}

	return nil
}

// RecalculationResult summarises one recompute pass for a season.
type RecalculationResult struct {
	SeasonID string
	Archived int
	Created  int
	Errors   []string
}

// CardSummaryView is the reporting shape of a player's card tally.
type CardSummaryView struct {
	SeasonPlayerID string
	PlayerID       string
	PlayerName     string
	ShirtNumber    int
	TeamID         string
	TeamName       string
	YellowCards    int
	RedCards       int
	MatchesPlayed  int
}

// SuspensionView is a suspension enriched with roster and match labels.
type SuspensionView struct {
	SuspensionID     string
	SeasonPlayerID   string
	PlayerName       string
	ShirtNumber      int
	TeamID           string
	TeamName         string
	Reason           Reason
	TriggerMatchID   string
	TriggerMatchInfo string
	MatchesBanned    int
	StartMatchID     string
	StartMatchInfo   string
	ServedMatches    int
	Status           Status
	Notes            string
	CreatedAt        time.Time
}

// SuspensionCheck answers whether a player may be selected for a match.
type SuspensionCheck struct {
	Suspended    bool
	Reason       Reason
	SuspensionID string
}
