package withdrawal

import "context"

type Repository interface {
	Create(ctx context.Context, w *Withdrawal) error
	GetByWithdrawalID(ctx context.Context, withdrawalID string) (*Withdrawal, error)
	// GetByReferenceForUpdate locks the row; the payout webhook may be
	// delivered more than once concurrently.
	GetByReferenceForUpdate(ctx context.Context, reference string) (*Withdrawal, error)
	Save(ctx context.Context, w *Withdrawal) error
}
