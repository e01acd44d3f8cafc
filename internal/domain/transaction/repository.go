package transaction

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	Save(ctx context.Context, t *Transaction) error

	// ListRecentROISuccess returns successful roi-type rows for the
	// investment created at or after since, newest first. The accrual
	// engine compares their amounts with a relative tolerance; exact
	// equality is never used.
	ListRecentROISuccess(ctx context.Context, investmentID string, since time.Time) ([]Transaction, error)
}
