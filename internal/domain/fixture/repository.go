package fixture

import "context"

// Repository exposes season fixture reads.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Fixture, error)
}
