package plan

import (
	"errors"
	"time"

	"vestra-backend/internal/domain/currency"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("plan not found")

// Plan defines the ROI schedule and bonus percentages for investments
// created under it. Rates are percentages (5 means 5%).
type Plan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	PlanID string `gorm:"size:32;uniqueIndex:ux_plans_plan_id" json:"plan_id"`
	Name   string `gorm:"size:100" json:"name"`

	DailyROI     float64 `gorm:"type:decimal(6,4)" json:"daily_roi"`
	TotalROI     float64 `gorm:"type:decimal(8,4)" json:"total_roi"`
	DurationDays int     `gorm:"not null" json:"duration_days"`

	WelcomeBonusPct  float64 `gorm:"type:decimal(6,4);default:0" json:"welcome_bonus_pct"`
	ReferralBonusPct float64 `gorm:"type:decimal(6,4);default:0" json:"referral_bonus_pct"`

	MinAmount float64           `gorm:"type:decimal(18,2)" json:"min_amount"`
	MaxAmount float64           `gorm:"type:decimal(18,2)" json:"max_amount"`
	Currency  currency.Currency `gorm:"type:enum('naira','usdt');default:'naira'" json:"currency"`
	Active    bool              `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Plan) TableName() string { return "plans" }

// Duration converts the plan's term into a wall-clock duration.
func (p *Plan) Duration() time.Duration {
	return time.Duration(p.DurationDays) * 24 * time.Hour
}
