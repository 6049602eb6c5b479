package roster

import "fmt"

// SeasonTeam is a club registered for one season.
type SeasonTeam struct {
	ID       string
	SeasonID string
	Name     string
	Short    string
}

// SeasonPlayer is a player's roster membership for one season and team.
type SeasonPlayer struct {
	ID          string
	SeasonID    string
	TeamID      string
	PlayerID    string
	Name        string
	ShirtNumber int
}

func (p SeasonPlayer) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("season player id is required")
	}
	if p.SeasonID == "" {
		return fmt.Errorf("season player season id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("season player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("season player name is required")
	}
	if p.ShirtNumber < 0 {
		return fmt.Errorf("shirt number cannot be negative")
	}

	return nil
}

// Appearance records that a season player took part in a match.
type Appearance struct {
	SeasonID       string
	SeasonPlayerID string
	MatchID        string
}
