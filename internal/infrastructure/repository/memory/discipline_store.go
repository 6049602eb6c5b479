package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/domain/fixture"
	"github.com/riskibarqy/league-manager/internal/domain/roster"
	"github.com/riskibarqy/league-manager/internal/platform/resilience"
)

// Dataset is the initial content of a DisciplineStore.
type Dataset struct {
	Teams       []roster.SeasonTeam
	Players     []roster.SeasonPlayer
	Fixtures    []fixture.Fixture
	Cards       []discipline.CardEvent
	Appearances []roster.Appearance
	Suspensions []discipline.Suspension
}

// DisciplineStore keeps roster, fixtures, card events and suspensions in
// memory. A recompute pass works on a private copy of the season's
// suspensions which replaces the committed copy only when the pass succeeds.
type DisciplineStore struct {
	mu          sync.RWMutex
	teams       map[string]roster.SeasonTeam
	players     map[string]roster.SeasonPlayer
	fixtures    map[string][]fixture.Fixture
	cards       map[string][]discipline.CardEvent
	appearances map[string][]roster.Appearance
	suspensions map[string][]discipline.Suspension

	seasonLocks *resilience.KeyedMutex
}

func NewDisciplineStore(data Dataset) *DisciplineStore {
	s := &DisciplineStore{
		teams:       make(map[string]roster.SeasonTeam, len(data.Teams)),
		players:     make(map[string]roster.SeasonPlayer, len(data.Players)),
		fixtures:    make(map[string][]fixture.Fixture),
		cards:       make(map[string][]discipline.CardEvent),
		appearances: make(map[string][]roster.Appearance),
		suspensions: make(map[string][]discipline.Suspension),
		seasonLocks: resilience.NewKeyedMutex(),
	}

	for _, item := range data.Teams {
		s.teams[item.ID] = item
	}
	for _, item := range data.Players {
		s.players[item.ID] = item
	}
	for _, item := range data.Fixtures {
		item.Status = fixture.NormalizeStatus(item.Status)
		s.fixtures[item.SeasonID] = append(s.fixtures[item.SeasonID], item)
	}
	for seasonID := range s.fixtures {
		slices.SortStableFunc(s.fixtures[seasonID], fixture.CompareSeasonOrder)
	}
	for _, item := range data.Cards {
		s.cards[item.SeasonID] = append(s.cards[item.SeasonID], item)
	}
	for _, item := range data.Appearances {
		s.appearances[item.SeasonID] = append(s.appearances[item.SeasonID], item)
	}
	for _, item := range data.Suspensions {
		s.suspensions[item.SeasonID] = append(s.suspensions[item.SeasonID], item)
	}

	return s
}

// AddCardEvent records a card issued in a match of the season.
func (s *DisciplineStore) AddCardEvent(_ context.Context, event discipline.CardEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[event.SeasonPlayerID]; !ok {
		return fmt.Errorf("unknown season player %s", event.SeasonPlayerID)
	}
	if _, ok := s.fixtureLocked(event.SeasonID, event.MatchID); !ok {
		return fmt.Errorf("unknown match %s in season %s", event.MatchID, event.SeasonID)
	}
	s.cards[event.SeasonID] = append(s.cards[event.SeasonID], event)
	return nil
}

func (s *DisciplineStore) WithinSeason(ctx context.Context, seasonID string, fn func(ctx context.Context, repo discipline.Repository) error) error {
	unlock, err := s.seasonLocks.Lock(ctx, seasonID)
	if err != nil {
		return err
	}
	defer unlock()

	s.mu.RLock()
	working := slices.Clone(s.suspensions[seasonID])
	s.mu.RUnlock()

	tx := &disciplineTx{store: s, seasonID: seasonID, suspensions: working}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.suspensions[seasonID] = tx.suspensions
	s.mu.Unlock()
	return nil
}

// matchOrderLocked returns the season's fixtures that hold a slot in season order.
func (s *DisciplineStore) matchOrderLocked(seasonID string) []fixture.Fixture {
	items := s.fixtures[seasonID]
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if fixture.IsDroppedStatus(item.Status) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *DisciplineStore) fixtureLocked(seasonID, matchID string) (fixture.Fixture, bool) {
	for _, item := range s.fixtures[seasonID] {
		if item.ID == matchID {
			return item, true
		}
	}
	return fixture.Fixture{}, false
}

func (s *DisciplineStore) aggregateLocked(seasonID string) []discipline.CardSummary {
	position := make(map[string]int)
	for i, item := range s.matchOrderLocked(seasonID) {
		position[item.ID] = i
	}

	type tally struct {
		summary    discipline.CardSummary
		lastYellow int
		lastRed    int
	}
	byPlayer := make(map[string]*tally)
	for _, event := range s.cards[seasonID] {
		pos, ok := position[event.MatchID]
		if !ok {
			continue
		}
		t, ok := byPlayer[event.SeasonPlayerID]
		if !ok {
			t = &tally{
				summary: discipline.CardSummary{
					SeasonPlayerID: event.SeasonPlayerID,
					SeasonTeamID:   s.players[event.SeasonPlayerID].TeamID,
				},
				lastYellow: -1,
				lastRed:    -1,
			}
			byPlayer[event.SeasonPlayerID] = t
		}

		switch event.Type {
		case discipline.CardYellow:
			t.summary.YellowCount++
			if pos > t.lastYellow {
				t.lastYellow = pos
				t.summary.LastYellowMatchID = event.MatchID
			}
		case discipline.CardRed:
			t.summary.RedCount++
			if pos > t.lastRed {
				t.lastRed = pos
				t.summary.LastRedMatchID = event.MatchID
			}
		}
	}

	out := make([]discipline.CardSummary, 0, len(byPlayer))
	for _, t := range byPlayer {
		out = append(out, t.summary)
	}
	slices.SortFunc(out, func(a, b discipline.CardSummary) int {
		return cmp.Compare(a.SeasonPlayerID, b.SeasonPlayerID)
	})
	return out
}

type disciplineTx struct {
	store       *DisciplineStore
	seasonID    string
	suspensions []discipline.Suspension
}

func (t *disciplineTx) checkSeason(seasonID string) error {
	if seasonID != t.seasonID {
		return fmt.Errorf("season %s is outside the unit of work for season %s", seasonID, t.seasonID)
	}
	return nil
}

func (t *disciplineTx) ArchiveActive(ctx context.Context, seasonID string) (int, error) {
	if err := t.checkSeason(seasonID); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	archived := 0
	for i := range t.suspensions {
		if t.suspensions[i].Status == discipline.StatusActive {
			t.suspensions[i].Status = discipline.StatusArchived
			archived++
		}
	}
	return archived, nil
}

func (t *disciplineTx) AggregateCards(ctx context.Context, seasonID string) ([]discipline.CardSummary, error) {
	if err := t.checkSeason(seasonID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.aggregateLocked(seasonID), nil
}

func (t *disciplineTx) NextMatchAfter(ctx context.Context, seasonID, matchID string) (string, bool, error) {
	if err := t.checkSeason(seasonID); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	order := t.store.matchOrderLocked(seasonID)
	for i, item := range order {
		if item.ID != matchID {
			continue
		}
		if i+1 < len(order) {
			return order[i+1].ID, true, nil
		}
		return "", false, nil
	}
	return "", false, nil
}

func (t *disciplineTx) Insert(ctx context.Context, suspension discipline.Suspension) (string, error) {
	if err := t.checkSeason(suspension.SeasonID); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := suspension.Validate(); err != nil {
		return "", err
	}
	if suspension.ID == "" {
		return "", fmt.Errorf("suspension id is required")
	}

	for _, item := range t.suspensions {
		if item.ID == suspension.ID {
			return "", fmt.Errorf("suspension %s already exists", suspension.ID)
		}
		if item.Status == discipline.StatusActive && item.SeasonPlayerID == suspension.SeasonPlayerID {
			return "", fmt.Errorf("season player %s already has an active suspension", suspension.SeasonPlayerID)
		}
	}

	suspension.Status = discipline.StatusActive
	t.suspensions = append(t.suspensions, suspension)
	return suspension.ID, nil
}
