package walletmock

import (
	"context"

	"vestra-backend/internal/domain/currency"
	domain "vestra-backend/internal/domain/wallet"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies wallet.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, w *domain.Wallet) error
	GetByUserIDFn        func(ctx context.Context, userID string) (*domain.Wallet, error)
	CreditFn             func(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	CreditEarningsFn     func(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	DebitFn              func(ctx context.Context, userID string, cur currency.Currency, amount float64) error
	AddWithdrawalTotalFn func(ctx context.Context, userID string, amount float64) error
	LockBonusFn          func(ctx context.Context, userID string, cur currency.Currency, source domain.BonusSource, amount float64) error
	UnlockBonusFn        func(ctx context.Context, userID string, cur currency.Currency, welcomePart, referralPart float64) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Wallet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Credit(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	if m.CreditFn != nil {
		return m.CreditFn(ctx, userID, cur, amount)
	}
	return nil
}

func (m *Repo) CreditEarnings(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	if m.CreditEarningsFn != nil {
		return m.CreditEarningsFn(ctx, userID, cur, amount)
	}
	return nil
}

func (m *Repo) Debit(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	if m.DebitFn != nil {
		return m.DebitFn(ctx, userID, cur, amount)
	}
	return nil
}

func (m *Repo) AddWithdrawalTotal(ctx context.Context, userID string, amount float64) error {
	if m.AddWithdrawalTotalFn != nil {
		return m.AddWithdrawalTotalFn(ctx, userID, amount)
	}
	return nil
}

func (m *Repo) LockBonus(ctx context.Context, userID string, cur currency.Currency, source domain.BonusSource, amount float64) error {
	if m.LockBonusFn != nil {
		return m.LockBonusFn(ctx, userID, cur, source, amount)
	}
	return nil
}

func (m *Repo) UnlockBonus(ctx context.Context, userID string, cur currency.Currency, welcomePart, referralPart float64) error {
	if m.UnlockBonusFn != nil {
		return m.UnlockBonusFn(ctx, userID, cur, welcomePart, referralPart)
	}
	return nil
}
