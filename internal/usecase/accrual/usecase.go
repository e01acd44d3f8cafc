package accrual

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	invDomain "vestra-backend/internal/domain/investment"
	settingsDomain "vestra-backend/internal/domain/settings"
	txDomain "vestra-backend/internal/domain/transaction"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/notify"
	"vestra-backend/pkg/id"
)

const (
	// guardWindow keeps just-flushed investments out of the due selection.
	// It only reduces thrashing; the transaction-record check below is the
	// authoritative duplicate protection.
	guardWindow = 2 * time.Minute
	// amountTolerance is the relative tolerance for matching a prior roi
	// transaction against the current bucket. Never compare exactly.
	amountTolerance = 0.01
)

// Usecase is the ROI accrual engine: each Tick accrues fractional ROI into
// the per-investment bucket and flushes full-cycle buckets into wallets at
// most once per cycle, surviving overlapping ticks and mid-flush crashes.
type Usecase struct {
	investments  invDomain.Repository
	wallets      walletDomain.Repository
	transactions txDomain.Repository
	settings     settingsDomain.Provider
	sink         notify.Sink

	// tickInterval is the scheduler cadence; it sizes the sub-tick accrual
	// increment and the idempotency lookback.
	tickInterval time.Duration
}

func NewUsecase(
	investments invDomain.Repository,
	wallets walletDomain.Repository,
	transactions txDomain.Repository,
	settings settingsDomain.Provider,
	sink notify.Sink,
	tickInterval time.Duration,
) *Usecase {
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}
	return &Usecase{
		investments:  investments,
		wallets:      wallets,
		transactions: transactions,
		settings:     settings,
		sink:         sink,
		tickInterval: tickInterval,
	}
}

// idempotencyWindow must exceed one tick interval so a flush that crashed
// after the wallet credit is still matched on the next tick.
func (u *Usecase) idempotencyWindow() time.Duration {
	w := 5 * time.Minute
	if d := 3 * u.tickInterval; d > w {
		w = d
	}
	return w
}

// Tick runs one full pass: flush every due investment, then smooth partial
// accrual into the rest. Per-investment failures are logged and retried on
// the next tick; they never abort the pass.
func (u *Usecase) Tick(ctx context.Context) (*TickReport, error) {
	snap, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("accrual: load settings: %w", err)
	}
	now := time.Now().UTC()
	report := &TickReport{}

	due, err := u.investments.ListDue(ctx, now, guardWindow)
	if err != nil {
		return nil, fmt.Errorf("accrual: select due investments: %w", err)
	}
	report.Due = len(due)

	for i := range due {
		outcome, completed, err := u.flushOne(ctx, due[i].InvestmentID, snap)
		if err != nil {
			report.Failed++
			log.Printf("accrual: flush %s failed (retry next tick): %v", due[i].InvestmentID, err)
			continue
		}
		switch outcome {
		case outcomeFlushed:
			report.Flushed++
		case outcomeAdvanced:
			report.Flushed++
		default:
			report.Skipped++
		}
		if completed {
			report.Completed++
		}
	}

	accruing, err := u.investments.ListAccruing(ctx, now)
	if err != nil {
		return report, fmt.Errorf("accrual: select accruing investments: %w", err)
	}
	for i := range accruing {
		delta := u.subTickIncrement(&accruing[i], snap)
		if delta <= 0 {
			continue
		}
		if err := u.investments.AccrueEarned(ctx, accruing[i].InvestmentID, delta); err != nil {
			log.Printf("accrual: sub-tick accrue %s failed: %v", accruing[i].InvestmentID, err)
			continue
		}
		report.Accrued++
	}
	return report, nil
}

// subTickIncrement is the observational smoothing amount added per tick:
// one subdivision of the cycle's ROI. It moves no money on its own.
func (u *Usecase) subTickIncrement(inv *invDomain.Investment, snap settingsDomain.Snapshot) float64 {
	cycleAmount := inv.Amount * inv.DailyROI / 100
	subdivisions := float64(snap.CyclePeriod) / float64(u.tickInterval)
	if subdivisions < 1 {
		subdivisions = 1
	}
	return cycleAmount / subdivisions
}

// flushOne implements the flush sequence for a single investment:
//
//  1. re-read; abort silently if another tick already advanced the cycle
//  2. the flush amount is the accrued bucket, never a recomputation
//  3. skip the credit when a matching roi transaction exists in the
//     trailing window (crash recovery / overlapping schedulers)
//  4. credit the wallet and record the roi transaction
//  5. advance the investment record; only after the credit succeeded
//  6. complete the investment once its term has elapsed
func (u *Usecase) flushOne(ctx context.Context, investmentID string, snap settingsDomain.Snapshot) (flushOutcome, bool, error) {
	inv, err := u.investments.GetByInvestmentID(ctx, investmentID)
	if err != nil {
		return outcomeSkipped, false, err
	}
	if inv.Status != invDomain.StatusActive {
		return outcomeSkipped, false, nil
	}
	now := time.Now().UTC()
	if inv.NextROICycleDate.After(now) {
		// another tick won the race; expected steady-state, not a fault
		log.Printf("accrual: %s already advanced, skipping", investmentID)
		return outcomeSkipped, false, nil
	}

	flushAmount := inv.EarnedAmount

	credited := false
	if flushAmount > 0 {
		duplicate, err := u.alreadyFlushed(ctx, investmentID, flushAmount, now)
		if err != nil {
			return outcomeSkipped, false, err
		}
		if duplicate {
			log.Printf("accrual: %s has a recent roi transaction for %.8f, skipping credit", investmentID, flushAmount)
		} else {
			if err := u.wallets.CreditEarnings(ctx, inv.UserID, inv.Currency, flushAmount); err != nil {
				// do not advance: the bucket must survive for the retry
				return outcomeSkipped, false, fmt.Errorf("wallet credit: %w", err)
			}
			if err := u.transactions.Create(ctx, &txDomain.Transaction{
				TransactionID: id.NewID32(),
				UserID:        inv.UserID,
				InvestmentID:  &inv.InvestmentID,
				Type:          txDomain.TypeROI,
				Amount:        flushAmount,
				Currency:      inv.Currency,
				Status:        txDomain.StatusSuccess,
				Narration:     "ROI cycle payout",
			}); err != nil {
				// wallet is credited but unwitnessed; abort the advance and
				// shout — the next tick may pay again without the witness
				return outcomeSkipped, false, fmt.Errorf("record roi transaction after credit: %w", err)
			}
			credited = true
		}
	}

	inv.TotalAccumulatedROI += flushAmount
	inv.EarnedAmount = 0
	inv.LastROIUpdate = now
	inv.NextROICycleDate = now.Add(snap.CyclePeriod)

	completed := false
	if !now.Before(inv.EndDate) {
		inv.Status = invDomain.StatusCompleted
		completed = true
	}

	if err := u.investments.Save(ctx, inv); err != nil {
		// credited but not advanced; the idempotency window absorbs this
		// on the next tick
		return outcomeSkipped, false, fmt.Errorf("advance investment after credit: %w", err)
	}

	if credited {
		u.sink.Publish(notify.Event{
			Kind:      notify.KindROIFlushed,
			UserID:    inv.UserID,
			Reference: inv.InvestmentID,
			Amount:    flushAmount,
			Currency:  inv.Currency,
			Message:   "ROI payout credited",
		})
	}
	if completed {
		u.sink.Publish(notify.Event{
			Kind:      notify.KindInvestmentCompleted,
			UserID:    inv.UserID,
			Reference: inv.InvestmentID,
			Amount:    inv.TotalAccumulatedROI,
			Currency:  inv.Currency,
			Message:   "investment term completed",
		})
	}

	if credited {
		return outcomeFlushed, completed, nil
	}
	return outcomeAdvanced, completed, nil
}

// alreadyFlushed reports whether a successful roi transaction for this
// investment within the trailing window carries approximately the same
// amount as the current bucket.
func (u *Usecase) alreadyFlushed(ctx context.Context, investmentID string, amount float64, now time.Time) (bool, error) {
	since := now.Add(-u.idempotencyWindow())
	recent, err := u.transactions.ListRecentROISuccess(ctx, investmentID, since)
	if err != nil {
		return false, fmt.Errorf("idempotency lookup: %w", err)
	}
	for i := range recent {
		if approximatelyEqual(recent[i].Amount, amount) {
			return true, nil
		}
	}
	return false, nil
}

func approximatelyEqual(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return true
	}
	return math.Abs(a-b) <= amountTolerance*scale
}
