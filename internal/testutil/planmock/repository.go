package planmock

import (
	"context"

	domain "vestra-backend/internal/domain/plan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies plan.Repository.
type Repo struct {
	GetByPlanIDFn func(ctx context.Context, planID string) (*domain.Plan, error)
	ListActiveFn  func(ctx context.Context) ([]domain.Plan, error)
}

func (m *Repo) GetByPlanID(ctx context.Context, planID string) (*domain.Plan, error) {
	if m.GetByPlanIDFn != nil {
		return m.GetByPlanIDFn(ctx, planID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Plan, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
