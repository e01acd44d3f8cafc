package usermock

import (
	"context"
	"time"

	domain "vestra-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	GetByUserIDFn                func(ctx context.Context, userID string) (*domain.User, error)
	SaveFn                       func(ctx context.Context, u *domain.User) error
	StampFirstActiveInvestmentFn func(ctx context.Context, userID string, at time.Time) error
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) StampFirstActiveInvestment(ctx context.Context, userID string, at time.Time) error {
	if m.StampFirstActiveInvestmentFn != nil {
		return m.StampFirstActiveInvestmentFn(ctx, userID, at)
	}
	return nil
}
