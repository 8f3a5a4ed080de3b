package helpdesk

import "context"

// Store defines the persistence contract for trending-question counters.
// Implementations must be safe for concurrent use.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
