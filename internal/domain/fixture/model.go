package fixture

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match of a season.
type Fixture struct {
	ID         string
	SeasonID   string
	Matchday   int
	HomeTeamID string
	AwayTeamID string
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	HomeScore  *int
	AwayScore  *int
	Status     string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}

// IsDroppedStatus reports fixtures that no longer occupy a slot in season order.
// Postponed fixtures keep their slot until they are rescheduled.
func IsDroppedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, "ABANDONED":
		return true
	default:
		return false
	}
}

// CompareSeasonOrder orders fixtures by matchday, then kickoff, then id.
func CompareSeasonOrder(a, b Fixture) int {
	if c := cmp.Compare(a.Matchday, b.Matchday); c != 0 {
		return c
	}
	if c := a.KickoffAt.Compare(b.KickoffAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Label renders a human readable match description for admin views.
func Label(matchday int, homeTeam, awayTeam string, kickoffAt time.Time) string {
	home := strings.TrimSpace(homeTeam)
	if home == "" {
		home = "TBD"
	}
	away := strings.TrimSpace(awayTeam)
	if away == "" {
		away = "TBD"
	}

	label := fmt.Sprintf("Matchday %d: %s vs %s", matchday, home, away)
	if !kickoffAt.IsZero() {
		label += " (" + kickoffAt.UTC().Format("2006-01-02") + ")"
	}
	return label
}

func (f Fixture) Label() string {
	return Label(f.Matchday, f.HomeTeam, f.AwayTeam, f.KickoffAt)
}
