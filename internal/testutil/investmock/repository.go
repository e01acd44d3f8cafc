package investmock

import (
	"context"
	"time"

	domain "vestra-backend/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investment.Repository.
// Only the methods a test fills in do anything; the rest are safe no-ops.
type Repo struct {
	CreateFn                     func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn          func(ctx context.Context, investmentID string) (*domain.Investment, error)
	GetByInvestmentIDForUpdateFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	SaveFn                       func(ctx context.Context, inv *domain.Investment) error
	CountByUserIDFn              func(ctx context.Context, userID string) (int64, error)
	CountActiveByUserIDFn        func(ctx context.Context, userID string) (int64, error)
	ListDueFn                    func(ctx context.Context, now time.Time, guard time.Duration) ([]domain.Investment, error)
	ListAccruingFn               func(ctx context.Context, now time.Time) ([]domain.Investment, error)
	AccrueEarnedFn               func(ctx context.Context, investmentID string, delta float64) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDForUpdateFn != nil {
		return m.GetByInvestmentIDForUpdateFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	if m.CountByUserIDFn != nil {
		return m.CountByUserIDFn(ctx, userID)
	}
	return 0, nil
}

func (m *Repo) CountActiveByUserID(ctx context.Context, userID string) (int64, error) {
	if m.CountActiveByUserIDFn != nil {
		return m.CountActiveByUserIDFn(ctx, userID)
	}
	return 0, nil
}

func (m *Repo) ListDue(ctx context.Context, now time.Time, guard time.Duration) ([]domain.Investment, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, now, guard)
	}
	return nil, nil
}

func (m *Repo) ListAccruing(ctx context.Context, now time.Time) ([]domain.Investment, error) {
	if m.ListAccruingFn != nil {
		return m.ListAccruingFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) AccrueEarned(ctx context.Context, investmentID string, delta float64) error {
	if m.AccrueEarnedFn != nil {
		return m.AccrueEarnedFn(ctx, investmentID, delta)
	}
	return nil
}
