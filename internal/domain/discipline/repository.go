package discipline

import "context"

// Repository is the season store seen by a single recompute pass. Every call
// made through it belongs to the enclosing unit of work.
type Repository interface {
	ArchiveActive(ctx context.Context, seasonID string) (int, error)
	AggregateCards(ctx context.Context, seasonID string) ([]CardSummary, error)
	NextMatchAfter(ctx context.Context, seasonID, matchID string) (string, bool, error)
	Insert(ctx context.Context, suspension Suspension) (string, error)
}

// UnitOfWork runs fn atomically while holding the season's recompute lock.
// A non-nil error from fn rolls back everything fn wrote and is returned as is.
type UnitOfWork interface {
	WithinSeason(ctx context.Context, seasonID string, fn func(ctx context.Context, repo Repository) error) error
}

// QueryRepository exposes committed disciplinary state to readers.
type QueryRepository interface {
	ListCardSummaryViews(ctx context.Context, seasonID string) ([]CardSummaryView, error)
	ListSuspensionViews(ctx context.Context, seasonID string, statuses []Status) ([]SuspensionView, error)
	ListActiveByPlayer(ctx context.Context, seasonID, seasonPlayerID string) ([]Suspension, error)
	ListMatchOrder(ctx context.Context, seasonID string) ([]string, error)
}
