package user

import (
	"context"
	"time"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*User, error)
	Save(ctx context.Context, u *User) error

	// StampFirstActiveInvestment sets FirstActiveInvestmentDate only when
	// it is still unset; later calls are no-ops.
	StampFirstActiveInvestment(ctx context.Context, userID string, at time.Time) error
}
