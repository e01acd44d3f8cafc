package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vestra-backend/internal/domain/currency"
	invDomain "vestra-backend/internal/domain/investment"
	settingsDomain "vestra-backend/internal/domain/settings"
	txDomain "vestra-backend/internal/domain/transaction"
	"vestra-backend/internal/domain/uow"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/notify"
	"vestra-backend/pkg/id"

	"gorm.io/gorm"
)

// activeInvestmentCap bounds concurrently running investments per user.
const activeInvestmentCap = 3

// Usecase owns investment creation and cancellation: plan validation,
// principal debit, bonus grants and the first-active-investment anchor.
// Completion is the accrual engine's job; running a second completion
// sweep here would race it over the status field.
type Usecase struct {
	uow      uow.UnitOfWork
	settings settingsDomain.Provider
	sink     notify.Sink
}

func NewUsecase(u uow.UnitOfWork, settings settingsDomain.Provider, sink notify.Sink) *Usecase {
	return &Usecase{uow: u, settings: settings, sink: sink}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*InvestmentDTO, error) {
	cur, err := currency.Parse(in.Currency)
	if err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, invDomain.ErrAmountOutOfBounds
	}
	snap, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if cur == currency.USDT && !snap.UsdtInvestmentEnabled {
		return nil, ErrUsdtDisabled
	}

	var dto *InvestmentDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Plans.GetByPlanID(ctx, in.PlanID)
		if err != nil {
			return fmt.Errorf("plan %s: %w", in.PlanID, err)
		}
		if !p.Active {
			return ErrPlanInactive
		}
		if p.Currency != cur {
			return ErrCurrencyMismatch
		}
		if in.Amount < p.MinAmount || in.Amount > p.MaxAmount {
			return fmt.Errorf("%w: plan accepts %.2f to %.2f",
				invDomain.ErrAmountOutOfBounds, p.MinAmount, p.MaxAmount)
		}

		active, err := r.Investments.CountActiveByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if active >= activeInvestmentCap {
			return invDomain.ErrActiveLimit
		}

		usr, err := r.Users.GetByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		everInvested, err := r.Investments.CountByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}

		// read first so a rejected debit reports the shortfall
		w, err := r.Wallets.GetByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		available := w.NairaBalance
		if cur == currency.USDT {
			available = w.UsdtBalance
		}
		if available < in.Amount {
			return &BalanceError{Required: in.Amount, Available: available, Currency: cur}
		}
		if err := r.Wallets.Debit(ctx, in.UserID, cur, in.Amount); err != nil {
			if errors.Is(err, walletDomain.ErrInsufficientBalance) {
				return &BalanceError{Required: in.Amount, Available: available, Currency: cur}
			}
			return err
		}

		now := time.Now().UTC()
		inv := &invDomain.Investment{
			InvestmentID:   id.NewID32(),
			UserID:         in.UserID,
			PlanID:         p.PlanID,
			Amount:         in.Amount,
			Currency:       cur,
			DailyROI:       p.DailyROI,
			TotalROI:       p.TotalROI,
			ExpectedReturn: in.Amount * p.TotalROI / 100,
			StartDate:      now,
			EndDate:        now.Add(p.Duration()),
			// the cycle is anchored to this creation instant, not to a
			// shared clock boundary, so payouts stay uncorrelated
			NextROICycleDate: now.Add(snap.CyclePeriod),
			LastROIUpdate:    now,
			Status:           invDomain.StatusActive,
		}

		firstEver := everInvested == 0 && !usr.WelcomeBonusGiven
		if firstEver && p.WelcomeBonusPct > 0 {
			inv.WelcomeBonus = in.Amount * p.WelcomeBonusPct / 100
			if err := r.Wallets.LockBonus(ctx, in.UserID, cur, walletDomain.BonusWelcome, inv.WelcomeBonus); err != nil {
				return err
			}
			if err := r.Transactions.Create(ctx, &txDomain.Transaction{
				TransactionID: id.NewID32(),
				UserID:        in.UserID,
				InvestmentID:  &inv.InvestmentID,
				Type:          txDomain.TypeBonus,
				Amount:        inv.WelcomeBonus,
				Currency:      cur,
				Status:        txDomain.StatusSuccess,
				Narration:     "welcome bonus locked",
			}); err != nil {
				return err
			}
			usr.WelcomeBonusGiven = true
		}

		if everInvested == 0 && usr.ReferredBy != nil && !usr.ReferralBonusGiven && p.ReferralBonusPct > 0 {
			inv.ReferralBonus = in.Amount * p.ReferralBonusPct / 100
			if err := r.Wallets.LockBonus(ctx, *usr.ReferredBy, cur, walletDomain.BonusReferral, inv.ReferralBonus); err != nil {
				return err
			}
			if err := r.Transactions.Create(ctx, &txDomain.Transaction{
				TransactionID: id.NewID32(),
				UserID:        *usr.ReferredBy,
				InvestmentID:  &inv.InvestmentID,
				Type:          txDomain.TypeReferral,
				Amount:        inv.ReferralBonus,
				Currency:      cur,
				Status:        txDomain.StatusSuccess,
				Narration:     "referral bonus locked",
			}); err != nil {
				return err
			}
			usr.ReferralBonusGiven = true
		}

		if usr.WelcomeBonusGiven || usr.ReferralBonusGiven {
			if err := r.Users.Save(ctx, usr); err != nil {
				return err
			}
		}
		if err := r.Users.StampFirstActiveInvestment(ctx, in.UserID, now); err != nil {
			return err
		}

		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}
		if err := r.Transactions.Create(ctx, &txDomain.Transaction{
			TransactionID: id.NewID32(),
			UserID:        in.UserID,
			InvestmentID:  &inv.InvestmentID,
			Type:          txDomain.TypeInvestment,
			Amount:        in.Amount,
			Currency:      cur,
			Status:        txDomain.StatusSuccess,
			Narration:     "investment principal",
		}); err != nil {
			return err
		}

		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Publish(notify.Event{
		Kind:      notify.KindInvestmentCreated,
		UserID:    dto.UserID,
		Reference: dto.InvestmentID,
		Amount:    dto.Amount,
		Currency:  currency.Currency(dto.Currency),
		Message:   "investment activated",
	})
	return dto, nil
}

// Cancel moves an active investment to the cancelled terminal state. The
// unflushed earned bucket is forfeited: paying it out here would let a
// cancel bypass the ROI-only withdrawal policy. The bucket value stays on
// the record for audit.
func (u *Usecase) Cancel(ctx context.Context, investmentID string) (*InvestmentDTO, error) {
	var dto *InvestmentDTO
	err := u.uow.WithinInvestmentTx(ctx, investmentID, func(r uow.Repos, inv *invDomain.Investment) error {
		if inv.Status != invDomain.StatusActive {
			return invDomain.ErrNotActive
		}
		inv.Status = invDomain.StatusCancelled
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invDomain.ErrNotFound
		}
		return nil, err
	}

	u.sink.Publish(notify.Event{
		Kind:      notify.KindInvestmentCancelled,
		UserID:    dto.UserID,
		Reference: dto.InvestmentID,
		Amount:    dto.Amount,
		Currency:  currency.Currency(dto.Currency),
		Message:   "investment cancelled",
	})
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, investmentID string) (*InvestmentDTO, error) {
	var dto *InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByInvestmentID(ctx, investmentID)
		if err != nil {
			return err
		}
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func toDTO(inv *invDomain.Investment) *InvestmentDTO {
	return &InvestmentDTO{
		InvestmentID:        inv.InvestmentID,
		UserID:              inv.UserID,
		PlanID:              inv.PlanID,
		Amount:              inv.Amount,
		Currency:            string(inv.Currency),
		DailyROI:            inv.DailyROI,
		TotalROI:            inv.TotalROI,
		ExpectedReturn:      inv.ExpectedReturn,
		EarnedAmount:        inv.EarnedAmount,
		TotalAccumulatedROI: inv.TotalAccumulatedROI,
		WelcomeBonus:        inv.WelcomeBonus,
		ReferralBonus:       inv.ReferralBonus,
		StartDate:           inv.StartDate,
		EndDate:             inv.EndDate,
		NextROICycleDate:    inv.NextROICycleDate,
		Status:              string(inv.Status),
	}
}
