package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vestra-backend/internal/domain/currency"
	settingsDomain "vestra-backend/internal/domain/settings"
	txDomain "vestra-backend/internal/domain/transaction"
	"vestra-backend/internal/domain/uow"
	walletDomain "vestra-backend/internal/domain/wallet"
	wdDomain "vestra-backend/internal/domain/withdrawal"
	"vestra-backend/internal/notify"
	"vestra-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrUsdtDisabled = errors.New("usdt withdrawals are disabled")

// Usecase is the withdrawal policy gate: it validates requests against the
// configured limits and the ROI-only policy, debits at request time, and
// settles payout outcomes idempotently.
type Usecase struct {
	uow      uow.UnitOfWork
	settings settingsDomain.Provider
	sink     notify.Sink
}

func NewUsecase(u uow.UnitOfWork, settings settingsDomain.Provider, sink notify.Sink) *Usecase {
	return &Usecase{uow: u, settings: settings, sink: sink}
}

func (u *Usecase) Request(ctx context.Context, in RequestInput) (*WithdrawalDTO, error) {
	cur, err := currency.Parse(in.Currency)
	if err != nil {
		return nil, err
	}
	snap, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if in.Amount < snap.MinWithdrawal || in.Amount > snap.MaxWithdrawal {
		return nil, fmt.Errorf("%w: allowed %.2f to %.2f",
			wdDomain.ErrAmountOutOfBounds, snap.MinWithdrawal, snap.MaxWithdrawal)
	}
	if cur == currency.USDT && !snap.UsdtWithdrawalEnabled {
		return nil, ErrUsdtDisabled
	}

	var dto *WithdrawalDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if snap.ROIOnlyWithdrawal {
			active, err := r.Investments.CountActiveByUserID(ctx, in.UserID)
			if err != nil {
				return err
			}
			if active == 0 {
				return wdDomain.ErrNoActiveInvestment
			}
			w, err := r.Wallets.GetByUserID(ctx, in.UserID)
			if err != nil {
				return err
			}
			if in.Amount > w.TotalEarnings {
				return &EarningsError{Requested: in.Amount, Available: w.TotalEarnings, Currency: cur}
			}
		}

		// the full amount leaves the spendable balance now; the fee is
		// retained by the platform, the net goes to the payout provider
		if err := r.Wallets.Debit(ctx, in.UserID, cur, in.Amount); err != nil {
			if errors.Is(err, walletDomain.ErrInsufficientBalance) {
				return fmt.Errorf("%w: requested %.2f %s", err, in.Amount, cur)
			}
			return err
		}

		fee := in.Amount * snap.WithdrawalFeePct / 100
		wd := &wdDomain.Withdrawal{
			WithdrawalID:  id.NewID32(),
			UserID:        in.UserID,
			Reference:     id.NewReference("wd"),
			Amount:        in.Amount,
			Fee:           fee,
			NetAmount:     in.Amount - fee,
			Currency:      cur,
			Status:        wdDomain.StatusPending,
			TransactionID: id.NewID32(),
		}
		if err := r.Transactions.Create(ctx, &txDomain.Transaction{
			TransactionID: wd.TransactionID,
			UserID:        in.UserID,
			WithdrawalID:  &wd.WithdrawalID,
			Type:          txDomain.TypeWithdrawal,
			Amount:        in.Amount,
			Currency:      cur,
			Status:        txDomain.StatusPending,
			Narration:     "withdrawal requested",
		}); err != nil {
			return err
		}
		if err := r.Withdrawals.Create(ctx, wd); err != nil {
			return err
		}
		dto = toDTO(wd)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Publish(notify.Event{
		Kind:      notify.KindWithdrawalRequested,
		UserID:    dto.UserID,
		Reference: dto.Reference,
		Amount:    dto.Amount,
		Currency:  cur,
		Message:   "withdrawal pending payout",
	})
	return dto, nil
}

// HandlePayoutOutcome settles a withdrawal from the payout provider's
// webhook. Terminal withdrawals are skipped silently so a replayed webhook
// can never refund twice; the row lock serializes concurrent deliveries.
func (u *Usecase) HandlePayoutOutcome(ctx context.Context, reference string, success bool, reason string) (*WithdrawalDTO, error) {
	var dto *WithdrawalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		wd, err := r.Withdrawals.GetByReferenceForUpdate(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return wdDomain.ErrNotFound
			}
			return err
		}
		if wd.Status.Terminal() {
			log.Printf("withdrawal: outcome for %s already settled (%s), skipping", reference, wd.Status)
			dto = toDTO(wd)
			return nil
		}

		now := time.Now().UTC()
		wd.SettledAt = &now
		if success {
			wd.Status = wdDomain.StatusCompleted
			if err := r.Wallets.AddWithdrawalTotal(ctx, wd.UserID, wd.Amount); err != nil {
				return err
			}
		} else {
			// refund the exact debited amount before marking failed
			if err := r.Wallets.Credit(ctx, wd.UserID, wd.Currency, wd.Amount); err != nil {
				return err
			}
			wd.Status = wdDomain.StatusFailed
			wd.FailureReason = reason
		}
		if err := r.Withdrawals.Save(ctx, wd); err != nil {
			return err
		}

		t, err := r.Transactions.GetByTransactionID(ctx, wd.TransactionID)
		if err == nil {
			if success {
				t.Status = txDomain.StatusSuccess
			} else {
				t.Status = txDomain.StatusFailed
			}
			if err := r.Transactions.Save(ctx, t); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		dto = toDTO(wd)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Publish(notify.Event{
		Kind:      notify.KindWithdrawalSettled,
		UserID:    dto.UserID,
		Reference: dto.Reference,
		Amount:    dto.Amount,
		Currency:  currency.Currency(dto.Currency),
		Message:   fmt.Sprintf("payout outcome: %s", dto.Status),
	})
	return dto, nil
}

func toDTO(wd *wdDomain.Withdrawal) *WithdrawalDTO {
	return &WithdrawalDTO{
		WithdrawalID: wd.WithdrawalID,
		UserID:       wd.UserID,
		Reference:    wd.Reference,
		Amount:       wd.Amount,
		Fee:          wd.Fee,
		NetAmount:    wd.NetAmount,
		Currency:     string(wd.Currency),
		Status:       string(wd.Status),
		CreatedAt:    wd.CreatedAt,
		SettledAt:    wd.SettledAt,
	}
}
