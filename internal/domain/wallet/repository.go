package wallet

import (
	"context"

	"vestra-backend/internal/domain/currency"
)

// Repository is the wallet accessor. Every mutation must be expressed as an
// atomic increment against the latest row, never a read-modify-write of a
// cached balance. Debits fail closed when funds are insufficient.
type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByUserID(ctx context.Context, userID string) (*Wallet, error)

	// Credit adds amount to the spendable balance (deposits, refunds).
	Credit(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	// CreditEarnings adds amount to the spendable balance and to
	// TotalEarnings. Used only for ROI flushes.
	CreditEarnings(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	// Debit subtracts amount from the spendable balance; returns
	// ErrInsufficientBalance without mutating when the balance would go
	// negative.
	Debit(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	// AddWithdrawalTotal bumps TotalWithdrawals after a payout completes.
	AddWithdrawalTotal(ctx context.Context, userID string, amount float64) error

	// LockBonus adds amount to the source-specific locked sub-balance, the
	// locked aggregate and TotalBonuses (plus TotalReferralEarnings for
	// referral bonuses).
	LockBonus(ctx context.Context, userID string, cur currency.Currency, source BonusSource, amount float64) error
	// UnlockBonus moves welcomePart+referralPart from the locked
	// sub-balances into the spendable balance in one update; fails closed
	// if either sub-balance would go negative.
	UnlockBonus(ctx context.Context, userID string, cur currency.Currency, welcomePart, referralPart float64) error
}
