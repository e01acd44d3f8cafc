package settingsmock

import (
	"context"

	domain "vestra-backend/internal/domain/settings"
)

var _ domain.Provider = (*Provider)(nil)

// Provider serves a fixed snapshot, optionally overridden per test via
// SnapshotFn.
type Provider struct {
	Snap       domain.Snapshot
	SnapshotFn func(ctx context.Context) (domain.Snapshot, error)
}

// Static wraps a snapshot in a provider.
func Static(s domain.Snapshot) *Provider { return &Provider{Snap: s} }

// Production returns a provider with the production defaults.
func Production() *Provider { return Static(domain.Defaults().View()) }

func (p *Provider) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if p.SnapshotFn != nil {
		return p.SnapshotFn(ctx)
	}
	return p.Snap, nil
}

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies settings.Repository.
type Repo struct {
	GetFn  func(ctx context.Context) (*domain.Settings, error)
	SaveFn func(ctx context.Context, s *domain.Settings) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return domain.Defaults(), nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Settings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
