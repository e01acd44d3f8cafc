package settings

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("settings not found")

// PeriodUnit is the unit the bonus maturity period is configured in.
type PeriodUnit string

const (
	UnitMinutes PeriodUnit = "minutes"
	UnitHours   PeriodUnit = "hours"
	UnitDays    PeriodUnit = "days"
)

func (u PeriodUnit) Duration(value int) time.Duration {
	switch u {
	case UnitMinutes:
		return time.Duration(value) * time.Minute
	case UnitHours:
		return time.Duration(value) * time.Hour
	default:
		return time.Duration(value) * 24 * time.Hour
	}
}

// Settings is the single persisted row of admin-mutable platform settings.
type Settings struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`

	MinWithdrawal     float64 `gorm:"type:decimal(18,2);default:1000" json:"min_withdrawal"`
	MaxWithdrawal     float64 `gorm:"type:decimal(18,2);default:10000000" json:"max_withdrawal"`
	WithdrawalFeePct  float64 `gorm:"type:decimal(6,4);default:2" json:"withdrawal_fee_pct"`
	ProcessingHours   int     `gorm:"default:24" json:"processing_hours"`
	AutoPayout        bool    `gorm:"default:false" json:"auto_payout"`
	ROIOnlyWithdrawal bool    `gorm:"default:true" json:"roi_only_withdrawal"`

	BonusWithdrawalPeriod int        `gorm:"default:15" json:"bonus_withdrawal_period"`
	BonusWithdrawalUnit   PeriodUnit `gorm:"type:enum('minutes','hours','days');default:'days'" json:"bonus_withdrawal_unit"`

	UsdtWithdrawalEnabled bool `gorm:"default:false" json:"usdt_withdrawal_enabled"`
	UsdtInvestmentEnabled bool `gorm:"default:false" json:"usdt_investment_enabled"`

	// TestingMode swaps in accelerated accrual constants (1h cycles) for
	// non-production verification. Production constants apply when false.
	TestingMode bool `gorm:"default:false" json:"testing_mode"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string { return "platform_settings" }

// Snapshot is the immutable view handed to usecases; core components never
// read the settings row (or any global) directly.
type Snapshot struct {
	MinWithdrawal     float64
	MaxWithdrawal     float64
	WithdrawalFeePct  float64
	ProcessingHours   int
	AutoPayout        bool
	ROIOnlyWithdrawal bool

	BonusMaturity     time.Duration
	BonusMaturityUnit PeriodUnit

	UsdtWithdrawalEnabled bool
	UsdtInvestmentEnabled bool

	// CyclePeriod is the flush cycle for ROI accrual (24h in production,
	// 1h in testing mode).
	CyclePeriod time.Duration
	TestingMode bool
}

const (
	productionCycle  = 24 * time.Hour
	acceleratedCycle = time.Hour
)

// View derives the usecase-facing snapshot from the persisted row.
func (s *Settings) View() Snapshot {
	cycle := productionCycle
	if s.TestingMode {
		cycle = acceleratedCycle
	}
	return Snapshot{
		MinWithdrawal:     s.MinWithdrawal,
		MaxWithdrawal:     s.MaxWithdrawal,
		WithdrawalFeePct:  s.WithdrawalFeePct,
		ProcessingHours:   s.ProcessingHours,
		AutoPayout:        s.AutoPayout,
		ROIOnlyWithdrawal: s.ROIOnlyWithdrawal,

		BonusMaturity:     s.BonusWithdrawalUnit.Duration(s.BonusWithdrawalPeriod),
		BonusMaturityUnit: s.BonusWithdrawalUnit,

		UsdtWithdrawalEnabled: s.UsdtWithdrawalEnabled,
		UsdtInvestmentEnabled: s.UsdtInvestmentEnabled,

		CyclePeriod: cycle,
		TestingMode: s.TestingMode,
	}
}

// Defaults returns the row inserted on first boot.
func Defaults() *Settings {
	return &Settings{
		MinWithdrawal:         1000,
		MaxWithdrawal:         10_000_000,
		WithdrawalFeePct:      2,
		ProcessingHours:       24,
		ROIOnlyWithdrawal:     true,
		BonusWithdrawalPeriod: 15,
		BonusWithdrawalUnit:   UnitDays,
	}
}
