package withdrawal

import (
	"fmt"
	"time"

	"vestra-backend/internal/domain/currency"
	wdDomain "vestra-backend/internal/domain/withdrawal"
)

// EarningsError reports a withdrawal rejected by the ROI-only policy,
// carrying the ROI balance actually available.
type EarningsError struct {
	Requested float64
	Available float64
	Currency  currency.Currency
}

func (e *EarningsError) Error() string {
	return fmt.Sprintf("withdrawals are limited to ROI earnings: requested %.2f %s, earned %.2f",
		e.Requested, e.Currency, e.Available)
}

func (e *EarningsError) Unwrap() error { return wdDomain.ErrInsufficientEarnings }

type RequestInput struct {
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type WithdrawalDTO struct {
	WithdrawalID string     `json:"withdrawal_id"`
	UserID       string     `json:"user_id"`
	Reference    string     `json:"reference"`
	Amount       float64    `json:"amount"`
	Fee          float64    `json:"fee"`
	NetAmount    float64    `json:"net_amount"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	SettledAt    *time.Time `json:"settled_at,omitempty"`
}
