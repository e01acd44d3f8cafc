package uow

import (
	"context"

	"vestra-backend/internal/domain/investment"
	"vestra-backend/internal/domain/plan"
	"vestra-backend/internal/domain/transaction"
	"vestra-backend/internal/domain/user"
	"vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/domain/withdrawal"
)

type Repos struct {
	Investments  investment.Repository
	Wallets      wallet.Repository
	Transactions transaction.Repository
	Users        user.Repository
	Plans        plan.Repository
	Withdrawals  withdrawal.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the investment row first, then pass it in
	WithinInvestmentTx(ctx context.Context, investmentID string, fn func(r Repos, inv *investment.Investment) error) error
}
