package mysql

import (
	"context"
	"fmt"

	"vestra-backend/internal/domain/currency"
	walletDomain "vestra-backend/internal/domain/wallet"

	"gorm.io/gorm"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

// column names per currency; balances are only ever mutated through
// atomic `col = col + ?` expressions against the latest row.
func balanceColumn(cur currency.Currency) string {
	if cur == currency.USDT {
		return "usdt_balance"
	}
	return "naira_balance"
}

func lockedColumns(cur currency.Currency, source walletDomain.BonusSource) (sub, agg string) {
	prefix := "locked_naira"
	if cur == currency.USDT {
		prefix = "locked_usdt"
	}
	if source == walletDomain.BonusReferral {
		return prefix + "_referral_bonuses", prefix + "_bonuses"
	}
	return prefix + "_welcome_bonuses", prefix + "_bonuses"
}

func (r *WalletRepository) Create(ctx context.Context, w *walletDomain.Wallet) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*walletDomain.Wallet, error) {
	var out walletDomain.Wallet
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *WalletRepository) Credit(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	col := balanceColumn(cur)
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumn(col, gorm.Expr(col+" + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNotFound
	}
	return nil
}

func (r *WalletRepository) CreditEarnings(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	col := balanceColumn(cur)
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]any{
			col:              gorm.Expr(col+" + ?", amount),
			"total_earnings": gorm.Expr("total_earnings + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNotFound
	}
	return nil
}

// Debit fails closed: the balance predicate is part of the UPDATE, so a
// concurrent debit can never drive the balance negative.
func (r *WalletRepository) Debit(ctx context.Context, userID string, cur currency.Currency, amount float64) error {
	col := balanceColumn(cur)
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where(fmt.Sprintf("user_id = ? AND %s >= ?", col), userID, amount).
		UpdateColumn(col, gorm.Expr(col+" - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrInsufficientBalance
	}
	return nil
}

func (r *WalletRepository) AddWithdrawalTotal(ctx context.Context, userID string, amount float64) error {
	return r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_withdrawals", gorm.Expr("total_withdrawals + ?", amount)).Error
}

func (r *WalletRepository) LockBonus(ctx context.Context, userID string, cur currency.Currency, source walletDomain.BonusSource, amount float64) error {
	sub, agg := lockedColumns(cur, source)
	cols := map[string]any{
		sub:             gorm.Expr(sub+" + ?", amount),
		agg:             gorm.Expr(agg+" + ?", amount),
		"total_bonuses": gorm.Expr("total_bonuses + ?", amount),
	}
	if source == walletDomain.BonusReferral {
		cols["total_referral_earnings"] = gorm.Expr("total_referral_earnings + ?", amount)
	}
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumns(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNotFound
	}
	return nil
}

func (r *WalletRepository) UnlockBonus(ctx context.Context, userID string, cur currency.Currency, welcomePart, referralPart float64) error {
	welcomeCol, agg := lockedColumns(cur, walletDomain.BonusWelcome)
	referralCol, _ := lockedColumns(cur, walletDomain.BonusReferral)
	bal := balanceColumn(cur)
	total := welcomePart + referralPart

	// single UPDATE moves locked funds to spendable; the sub-balance
	// predicates keep the aggregate invariant from going negative under a
	// duplicate unlock.
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where(fmt.Sprintf("user_id = ? AND %s >= ? AND %s >= ?", welcomeCol, referralCol),
			userID, welcomePart, referralPart).
		UpdateColumns(map[string]any{
			welcomeCol:  gorm.Expr(welcomeCol+" - ?", welcomePart),
			referralCol: gorm.Expr(referralCol+" - ?", referralPart),
			agg:         gorm.Expr(agg+" - ?", total),
			bal:         gorm.Expr(bal+" + ?", total),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNoLockedBonus
	}
	return nil
}
