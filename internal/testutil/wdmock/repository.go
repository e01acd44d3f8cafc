package wdmock

import (
	"context"

	domain "vestra-backend/internal/domain/withdrawal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies withdrawal.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, w *domain.Withdrawal) error
	GetByWithdrawalIDFn       func(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	GetByReferenceForUpdateFn func(ctx context.Context, reference string) (*domain.Withdrawal, error)
	SaveFn                    func(ctx context.Context, w *domain.Withdrawal) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Withdrawal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	if m.GetByWithdrawalIDFn != nil {
		return m.GetByWithdrawalIDFn(ctx, withdrawalID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByReferenceForUpdate(ctx context.Context, reference string) (*domain.Withdrawal, error) {
	if m.GetByReferenceForUpdateFn != nil {
		return m.GetByReferenceForUpdateFn(ctx, reference)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, w *domain.Withdrawal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}
