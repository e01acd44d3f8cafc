package investment

import (
	"errors"
	"fmt"
	"time"

	"vestra-backend/internal/domain/currency"
)

var (
	ErrPlanInactive     = errors.New("plan is not open for investment")
	ErrCurrencyMismatch = errors.New("currency does not match plan currency")
	ErrUsdtDisabled     = errors.New("usdt investments are disabled")
)

// BalanceError reports a rejected debit with the shortfall.
type BalanceError struct {
	Required  float64
	Available float64
	Currency  currency.Currency
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %.2f %s, available %.2f",
		e.Required, e.Currency, e.Available)
}

type CreateInput struct {
	UserID   string  `json:"user_id"`
	PlanID   string  `json:"plan_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type InvestmentDTO struct {
	InvestmentID        string    `json:"investment_id"`
	UserID              string    `json:"user_id"`
	PlanID              string    `json:"plan_id"`
	Amount              float64   `json:"amount"`
	Currency            string    `json:"currency"`
	DailyROI            float64   `json:"daily_roi"`
	TotalROI            float64   `json:"total_roi"`
	ExpectedReturn      float64   `json:"expected_return"`
	EarnedAmount        float64   `json:"earned_amount"`
	TotalAccumulatedROI float64   `json:"total_accumulated_roi"`
	WelcomeBonus        float64   `json:"welcome_bonus"`
	ReferralBonus       float64   `json:"referral_bonus"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	NextROICycleDate    time.Time `json:"next_roi_cycle_date"`
	Status              string    `json:"status"`
}
