package repositories

import "context"

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	// Ping verifies connectivity to the store.
	Ping(ctx context.Context) error
}
