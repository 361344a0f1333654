package ports

import "context"

// HealthChecker reports the health of an external dependency.
type HealthChecker interface {
	// Ping verifies connectivity, returning nil when the dependency is reachable.
	Ping(ctx context.Context) error
	// Name identifies the dependency in health responses ("postgresql", "redis").
	Name() string
}
