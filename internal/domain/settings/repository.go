package settings

import "context"

type Repository interface {
	// Get returns the settings row, inserting Defaults() when missing.
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

// Provider hands core components an immutable snapshot per operation.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
