package bonus

import (
	"context"
	"fmt"
	"time"

	"vestra-backend/internal/domain/currency"
	settingsDomain "vestra-backend/internal/domain/settings"
	txDomain "vestra-backend/internal/domain/transaction"
	"vestra-backend/internal/domain/uow"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/notify"
	"vestra-backend/pkg/id"
)

// Usecase gates the release of locked welcome/referral bonuses. Locking
// happens at investment creation through the wallet accessor; this side
// owns the maturity check and the unlock-and-withdraw move.
type Usecase struct {
	uow      uow.UnitOfWork
	settings settingsDomain.Provider
	sink     notify.Sink
}

func NewUsecase(u uow.UnitOfWork, settings settingsDomain.Provider, sink notify.Sink) *Usecase {
	return &Usecase{uow: u, settings: settings, sink: sink}
}

// CheckEligibility applies the maturity rule:
//   - no first active investment yet: not eligible, full period remains
//   - never withdrawn before: eligible once the maturity period has passed
//     since the first active investment
//   - withdrawn before: eligible immediately. The waiting period applies to
//     the first bonus withdrawal only; this is an intentional business
//     rule, not an oversight.
func (u *Usecase) CheckEligibility(ctx context.Context, userID string) (*EligibilityDTO, error) {
	snap, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var dto *EligibilityDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if usr.LastBonusWithdrawalDate != nil {
			dto = &EligibilityDTO{Eligible: true}
			return nil
		}
		if usr.FirstActiveInvestmentDate == nil {
			dto = &EligibilityDTO{
				Eligible:      false,
				TimeRemaining: formatRemaining(snap.BonusMaturity, snap.BonusMaturityUnit),
			}
			return nil
		}
		elapsed := time.Now().UTC().Sub(*usr.FirstActiveInvestmentDate)
		if elapsed >= snap.BonusMaturity {
			dto = &EligibilityDTO{Eligible: true}
			return nil
		}
		dto = &EligibilityDTO{
			Eligible:      false,
			TimeRemaining: formatRemaining(snap.BonusMaturity-elapsed, snap.BonusMaturityUnit),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// WithdrawBonus moves the entire locked bonus total for cur into the
// spendable balance and stamps the withdrawal date. Since the full total
// is released, the proportional sub-balance decrement reduces each source
// bucket to zero.
func (u *Usecase) WithdrawBonus(ctx context.Context, userID string, cur currency.Currency) (*WithdrawBonusDTO, error) {
	elig, err := u.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !elig.Eligible {
		return nil, fmt.Errorf("%w: %s remaining", ErrNotMatured, elig.TimeRemaining)
	}

	var dto *WithdrawBonusDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.Wallets.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		welcomePart, referralPart := lockedParts(w, cur)
		total := welcomePart + referralPart
		if total <= 0 {
			return walletDomain.ErrNoLockedBonus
		}

		if err := r.Wallets.UnlockBonus(ctx, userID, cur, welcomePart, referralPart); err != nil {
			return err
		}

		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		usr.LastBonusWithdrawalDate = &now
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}

		if err := r.Transactions.Create(ctx, &txDomain.Transaction{
			TransactionID: id.NewID32(),
			UserID:        userID,
			Type:          txDomain.TypeBonus,
			Amount:        total,
			Currency:      cur,
			Status:        txDomain.StatusSuccess,
			Narration:     "locked bonus released to balance",
		}); err != nil {
			return err
		}

		dto = &WithdrawBonusDTO{
			Success:      true,
			Amount:       total,
			Currency:     string(cur),
			WelcomePart:  welcomePart,
			ReferralPart: referralPart,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Publish(notify.Event{
		Kind:     notify.KindBonusUnlocked,
		UserID:   userID,
		Amount:   dto.Amount,
		Currency: cur,
		Message:  "locked bonus released",
	})
	return dto, nil
}

func lockedParts(w *walletDomain.Wallet, cur currency.Currency) (welcome, referral float64) {
	if cur == currency.USDT {
		return w.LockedUsdtWelcomeBonuses, w.LockedUsdtReferralBonuses
	}
	return w.LockedNairaWelcomeBonuses, w.LockedNairaReferralBonuses
}
