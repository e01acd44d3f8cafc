package txmock

import (
	"context"
	"time"

	domain "vestra-backend/internal/domain/transaction"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies transaction.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, t *domain.Transaction) error
	GetByTransactionIDFn   func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	SaveFn                 func(ctx context.Context, t *domain.Transaction) error
	ListRecentROISuccessFn func(ctx context.Context, investmentID string, since time.Time) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListRecentROISuccess(ctx context.Context, investmentID string, since time.Time) ([]domain.Transaction, error) {
	if m.ListRecentROISuccessFn != nil {
		return m.ListRecentROISuccessFn(ctx, investmentID, since)
	}
	return nil, nil
}
