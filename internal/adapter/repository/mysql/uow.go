package mysql

import (
	"context"

	"vestra-backend/internal/domain/investment"
	"vestra-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Investments:  &InvestmentRepository{db: tx},
		Wallets:      &WalletRepository{db: tx},
		Transactions: &TransactionRepository{db: tx},
		Users:        &UserRepository{db: tx},
		Plans:        &PlanRepository{db: tx},
		Withdrawals:  &WithdrawalRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinInvestmentTx(ctx context.Context, investmentID string, fn func(r uow.Repos, inv *investment.Investment) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the investment row up-front to prevent races
		inv, err := r.Investments.GetByInvestmentIDForUpdate(ctx, investmentID)
		if err != nil {
			return err
		}
		return fn(r, inv)
	})
}
