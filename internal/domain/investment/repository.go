package investment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*Investment, error)
	Save(ctx context.Context, inv *Investment) error

	// CountByUserID counts every investment the user has ever made,
	// regardless of status. Used for first-investment bonus decisions.
	CountByUserID(ctx context.Context, userID string) (int64, error)
	CountActiveByUserID(ctx context.Context, userID string) (int64, error)

	// ListDue selects flush candidates: active, not past end-of-term
	// exclusion, cycle boundary reached, and last flush older than the
	// guard window. The guard reduces thrashing only; correctness comes
	// from the transaction-record idempotency check.
	ListDue(ctx context.Context, now time.Time, guard time.Duration) ([]Investment, error)
	// ListAccruing selects active investments still inside their cycle,
	// for observational sub-tick accrual.
	ListAccruing(ctx context.Context, now time.Time) ([]Investment, error)
	// AccrueEarned atomically adds delta to the earned bucket without
	// touching any scheduling field.
	AccrueEarned(ctx context.Context, investmentID string, delta float64) error
}
