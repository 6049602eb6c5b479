package memory

import (
	"context"

	"github.com/riskibarqy/league-manager/internal/domain/fixture"
)

// FixtureRepository serves season fixtures from a DisciplineStore.
type FixtureRepository struct {
	store *DisciplineStore
}

func NewFixtureRepository(store *DisciplineStore) *FixtureRepository {
	return &FixtureRepository{store: store}
}

func (r *FixtureRepository) ListBySeason(_ context.Context, seasonID string) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.store.fixtures[seasonID]
	out := make([]fixture.Fixture, 0, len(items))
	out = append(out, items...)
	return out, nil
}
