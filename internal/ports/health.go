package ports

import "context"

// HealthChecker is a dependency the readiness probe can ask about: the
// board store or the project API client.
type HealthChecker interface {
	// Name keys the checker's result, e.g. "redis" or "project-api".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give
	// up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier checker with the same
	// name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns one entry per name; a nil
	// error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
