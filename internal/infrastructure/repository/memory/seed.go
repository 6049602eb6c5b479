package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
	"github.com/riskibarqy/league-manager/internal/domain/roster"
)

const SeasonIDLiga1 = "idn-liga-1-2025"

func SeedTeams() []roster.SeasonTeam {
	return []roster.SeasonTeam{
		{ID: "st-persija", SeasonID: SeasonIDLiga1, Name: "Persija Jakarta", Short: "PSJ"},
		{ID: "st-persib", SeasonID: SeasonIDLiga1, Name: "Persib Bandung", Short: "PSB"},
		{ID: "st-persebaya", SeasonID: SeasonIDLiga1, Name: "Persebaya Surabaya", Short: "PRB"},
		{ID: "st-baliutd", SeasonID: SeasonIDLiga1, Name: "Bali United", Short: "BU"},
	}
}

func SeedPlayers() []roster.SeasonPlayer {
	return []roster.SeasonPlayer{
		{ID: "sp-psj-04", SeasonID: SeasonIDLiga1, TeamID: "st-persija", PlayerID: "idn-def-01", Name: "Hansamu Yama", ShirtNumber: 4},
		{ID: "sp-psj-10", SeasonID: SeasonIDLiga1, TeamID: "st-persija", PlayerID: "idn-mid-01", Name: "Maciej Gajos", ShirtNumber: 10},
		{ID: "sp-psj-09", SeasonID: SeasonIDLiga1, TeamID: "st-persija", PlayerID: "idn-fwd-01", Name: "Gustavo Almeida", ShirtNumber: 9},
		{ID: "sp-psb-05", SeasonID: SeasonIDLiga1, TeamID: "st-persib", PlayerID: "idn-def-02", Name: "Nick Kuipers", ShirtNumber: 5},
		{ID: "sp-psb-23", SeasonID: SeasonIDLiga1, TeamID: "st-persib", PlayerID: "idn-mid-02", Name: "Marc Klok", ShirtNumber: 23},
		{ID: "sp-psb-19", SeasonID: SeasonIDLiga1, TeamID: "st-persib", PlayerID: "idn-fwd-02", Name: "David da Silva", ShirtNumber: 19},
		{ID: "sp-prb-03", SeasonID: SeasonIDLiga1, TeamID: "st-persebaya", PlayerID: "idn-def-03", Name: "Dusan Stevanovic", ShirtNumber: 3},
		{ID: "sp-prb-08", SeasonID: SeasonIDLiga1, TeamID: "st-persebaya", PlayerID: "idn-mid-03", Name: "Bruno Moreira", ShirtNumber: 8},
		{ID: "sp-prb-11", SeasonID: SeasonIDLiga1, TeamID: "st-persebaya", PlayerID: "idn-fwd-03", Name: "Paulo Henrique", ShirtNumber: 11},
		{ID: "sp-bu-12", SeasonID: SeasonIDLiga1, TeamID: "st-baliutd", PlayerID: "idn-def-04", Name: "Ricky Fajrin", ShirtNumber: 12},
		{ID: "sp-bu-16", SeasonID: SeasonIDLiga1, TeamID: "st-baliutd", PlayerID: "idn-mid-04", Name: "Eber Bessa", ShirtNumber: 16},
		{ID: "sp-bu-06", SeasonID: SeasonIDLiga1, TeamID: "st-baliutd", PlayerID: "idn-mid-05", Name: "Mitsuru Maruoka", ShirtNumber: 6},
	}
}

// SeedFixtures returns a five-matchday double pairing; matchdays 1-4 are played.
func SeedFixtures() []fixture.Fixture {
	type pairing struct {
		home, away string
	}
	rounds := [][]pairing{
		{{"st-persija", "st-persib"}, {"st-persebaya", "st-baliutd"}},
		{{"st-persib", "st-persebaya"}, {"st-baliutd", "st-persija"}},
		{{"st-persija", "st-persebaya"}, {"st-persib", "st-baliutd"}},
		{{"st-persib", "st-persija"}, {"st-baliutd", "st-persebaya"}},
		{{"st-persebaya", "st-persija"}, {"st-baliutd", "st-persib"}},
	}

	names := make(map[string]string)
	for _, team := range SeedTeams() {
		names[team.ID] = team.Name
	}

	firstKickoff := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)
	out := make([]fixture.Fixture, 0, 10)
	for i, round := range rounds {
		matchday := i + 1
		status := fixture.StatusFinished
		if matchday == len(rounds) {
			status = fixture.StatusScheduled
		}
		for j, p := range round {
			out = append(out, fixture.Fixture{
				ID:         fmt.Sprintf("m%02d", len(out)+1),
				SeasonID:   SeasonIDLiga1,
				Matchday:   matchday,
				HomeTeamID: p.home,
				AwayTeamID: p.away,
				HomeTeam:   names[p.home],
				AwayTeam:   names[p.away],
				KickoffAt:  firstKickoff.AddDate(0, 0, 7*i).Add(time.Duration(j) * 3 * time.Hour),
				Status:     status,
			})
		}
	}
	return out
}

func SeedCardEvents() []discipline.CardEvent {
	card := func(n int, seasonPlayerID, matchID string, cardType discipline.CardType, minute int) discipline.CardEvent {
		return discipline.CardEvent{
			ID:             fmt.Sprintf("ce-%03d", n),
			SeasonID:       SeasonIDLiga1,
			SeasonPlayerID: seasonPlayerID,
			MatchID:        matchID,
			Type:           cardType,
			Minute:         minute,
		}
	}

	return []discipline.CardEvent{
		card(1, "sp-psb-23", "m01", discipline.CardYellow, 34),
		card(2, "sp-psb-23", "m06", discipline.CardYellow, 71),
		card(3, "sp-prb-03", "m03", discipline.CardRed, 58),
		card(4, "sp-psj-04", "m01", discipline.CardYellow, 12),
		card(5, "sp-bu-16", "m02", discipline.CardYellow, 45),
		card(6, "sp-bu-16", "m06", discipline.CardYellow, 80),
		card(7, "sp-bu-16", "m08", discipline.CardRed, 88),
		card(8, "sp-psj-10", "m07", discipline.CardYellow, 66),
	}
}

// SeedAppearances lists every seeded player in each played match of their team.
func SeedAppearances() []roster.Appearance {
	players := SeedPlayers()
	out := make([]roster.Appearance, 0)
	for _, match := range SeedFixtures() {
		if !fixture.IsFinishedStatus(match.Status) {
			continue
		}
		for _, p := range players {
			if p.TeamID != match.HomeTeamID && p.TeamID != match.AwayTeamID {
				continue
			}
			out = append(out, roster.Appearance{
				SeasonID:       SeasonIDLiga1,
				SeasonPlayerID: p.ID,
				MatchID:        match.ID,
			})
		}
	}
	return out
}

func SeedDataset() Dataset {
	return Dataset{
		Teams:       SeedTeams(),
		Players:     SeedPlayers(),
		Fixtures:    SeedFixtures(),
		Cards:       SeedCardEvents(),
		Appearances: SeedAppearances(),
	}
}
