package investment

import (
	"errors"
	"time"

	"vestra-backend/internal/domain/currency"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("investment not found")
	ErrNotActive         = errors.New("investment is not active")
	ErrActiveLimit       = errors.New("active investment limit reached")
	ErrAmountOutOfBounds = errors.New("amount outside plan limits")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Investment struct {
	ID           uint64            `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string            `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	UserID       string            `gorm:"size:32;index:idx_investments_user" json:"user_id"`
	PlanID       string            `gorm:"size:32;index" json:"plan_id"`
	Amount       float64           `gorm:"type:decimal(18,2)" json:"amount"`
	Currency     currency.Currency `gorm:"type:enum('naira','usdt');default:'naira'" json:"currency"`

	DailyROI       float64 `gorm:"type:decimal(6,4)" json:"daily_roi"`
	TotalROI       float64 `gorm:"type:decimal(6,4)" json:"total_roi"`
	ExpectedReturn float64 `gorm:"type:decimal(18,2)" json:"expected_return"`

	// EarnedAmount is the current-cycle accrual bucket; it is reset to zero
	// in the same flush that adds its value to TotalAccumulatedROI.
	EarnedAmount        float64 `gorm:"type:decimal(18,8);default:0" json:"earned_amount"`
	TotalAccumulatedROI float64 `gorm:"type:decimal(18,8);default:0" json:"total_accumulated_roi"`

	WelcomeBonus  float64 `gorm:"type:decimal(18,2);default:0" json:"welcome_bonus"`
	ReferralBonus float64 `gorm:"type:decimal(18,2);default:0" json:"referral_bonus"`

	StartDate time.Time `gorm:"index" json:"start_date"`
	EndDate   time.Time `gorm:"index:idx_investments_due" json:"end_date"`
	// NextROICycleDate is the single authoritative flush boundary. It only
	// moves forward, and each investment's boundary is anchored to its own
	// creation instant.
	NextROICycleDate time.Time `gorm:"index:idx_investments_due" json:"next_roi_cycle_date"`
	LastROIUpdate    time.Time `json:"last_roi_update"`

	Status Status `gorm:"type:enum('pending','active','completed','cancelled');default:'active';index:idx_investments_due" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }
