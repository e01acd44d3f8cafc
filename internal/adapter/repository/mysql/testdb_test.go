package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type investmentSQLite struct {
	ID                  uint64         `gorm:"primaryKey;column:id"`
	InvestmentID        string         `gorm:"size:32;column:investment_id"`
	UserID              string         `gorm:"size:32;column:user_id"`
	PlanID              string         `gorm:"size:32;column:plan_id"`
	Amount              float64        `gorm:"column:amount"`
	Currency            string         `gorm:"type:text;column:currency"` // ← no enum
	DailyROI            float64        `gorm:"column:daily_roi"`
	TotalROI            float64        `gorm:"column:total_roi"`
	ExpectedReturn      float64        `gorm:"column:expected_return"`
	EarnedAmount        float64        `gorm:"column:earned_amount"`
	TotalAccumulatedROI float64        `gorm:"column:total_accumulated_roi"`
	WelcomeBonus        float64        `gorm:"column:welcome_bonus"`
	ReferralBonus       float64        `gorm:"column:referral_bonus"`
	StartDate           time.Time      `gorm:"column:start_date"`
	EndDate             time.Time      `gorm:"column:end_date"`
	NextROICycleDate    time.Time      `gorm:"column:next_roi_cycle_date"`
	LastROIUpdate       time.Time      `gorm:"column:last_roi_update"`
	Status              string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt           time.Time      `gorm:"column:created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type walletSQLite struct {
	ID       uint64 `gorm:"primaryKey;column:id"`
	WalletID string `gorm:"size:32;column:wallet_id"`
	UserID   string `gorm:"size:32;column:user_id"`

	NairaBalance float64 `gorm:"column:naira_balance"`
	UsdtBalance  float64 `gorm:"column:usdt_balance"`

	LockedNairaWelcomeBonuses  float64 `gorm:"column:locked_naira_welcome_bonuses"`
	LockedNairaReferralBonuses float64 `gorm:"column:locked_naira_referral_bonuses"`
	LockedNairaBonuses         float64 `gorm:"column:locked_naira_bonuses"`
	LockedUsdtWelcomeBonuses   float64 `gorm:"column:locked_usdt_welcome_bonuses"`
	LockedUsdtReferralBonuses  float64 `gorm:"column:locked_usdt_referral_bonuses"`
	LockedUsdtBonuses          float64 `gorm:"column:locked_usdt_bonuses"`

	TotalDeposits         float64 `gorm:"column:total_deposits"`
	TotalWithdrawals      float64 `gorm:"column:total_withdrawals"`
	TotalEarnings         float64 `gorm:"column:total_earnings"`
	TotalBonuses          float64 `gorm:"column:total_bonuses"`
	TotalReferralEarnings float64 `gorm:"column:total_referral_earnings"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (walletSQLite) TableName() string { return "wallets" }

type transactionSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:32;column:transaction_id"`
	UserID        string    `gorm:"size:32;column:user_id"`
	InvestmentID  *string   `gorm:"size:32;column:investment_id"`
	WithdrawalID  *string   `gorm:"size:32;column:withdrawal_id"`
	Type          string    `gorm:"type:text;column:type"` // ← no enum
	Amount        float64   `gorm:"column:amount"`
	Currency      string    `gorm:"type:text;column:currency"`
	Status        string    `gorm:"type:text;column:status"` // ← no enum
	Narration     string    `gorm:"type:text;column:narration"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

type userSQLite struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	UserID string `gorm:"size:32;column:user_id"`
	Email  string `gorm:"size:191;column:email"`

	FirstActiveInvestmentDate *time.Time `gorm:"column:first_active_investment_date"`
	WelcomeBonusGiven         bool       `gorm:"column:welcome_bonus_given"`
	LastBonusWithdrawalDate   *time.Time `gorm:"column:last_bonus_withdrawal_date"`

	ReferredBy         *string `gorm:"size:32;column:referred_by"`
	ReferralBonusGiven bool    `gorm:"column:referral_bonus_given"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type planSQLite struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	PlanID string `gorm:"size:32;column:plan_id"`
	Name   string `gorm:"size:100;column:name"`

	DailyROI     float64 `gorm:"column:daily_roi"`
	TotalROI     float64 `gorm:"column:total_roi"`
	DurationDays int     `gorm:"column:duration_days"`

	WelcomeBonusPct  float64 `gorm:"column:welcome_bonus_pct"`
	ReferralBonusPct float64 `gorm:"column:referral_bonus_pct"`

	MinAmount float64 `gorm:"column:min_amount"`
	MaxAmount float64 `gorm:"column:max_amount"`
	Currency  string  `gorm:"type:text;column:currency"` // ← no enum
	Active    bool    `gorm:"column:active"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (planSQLite) TableName() string { return "plans" }

type withdrawalSQLite struct {
	ID           uint64  `gorm:"primaryKey;column:id"`
	WithdrawalID string  `gorm:"size:32;column:withdrawal_id"`
	UserID       string  `gorm:"size:32;column:user_id"`
	Reference    string  `gorm:"size:32;column:reference"`
	Amount       float64 `gorm:"column:amount"`
	Fee          float64 `gorm:"column:fee"`
	NetAmount    float64 `gorm:"column:net_amount"`
	Currency     string  `gorm:"type:text;column:currency"` // ← no enum
	Status       string  `gorm:"type:text;column:status"`  // ← no enum

	TransactionID string     `gorm:"size:32;column:transaction_id"`
	FailureReason string     `gorm:"type:text;column:failure_reason"`
	SettledAt     *time.Time `gorm:"column:settled_at"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (withdrawalSQLite) TableName() string { return "withdrawals" }

type settingsSQLite struct {
	ID uint64 `gorm:"primaryKey;column:id"`

	MinWithdrawal     float64 `gorm:"column:min_withdrawal"`
	MaxWithdrawal     float64 `gorm:"column:max_withdrawal"`
	WithdrawalFeePct  float64 `gorm:"column:withdrawal_fee_pct"`
	ProcessingHours   int     `gorm:"column:processing_hours"`
	AutoPayout        bool    `gorm:"column:auto_payout"`
	ROIOnlyWithdrawal bool    `gorm:"column:roi_only_withdrawal"`

	BonusWithdrawalPeriod int    `gorm:"column:bonus_withdrawal_period"`
	BonusWithdrawalUnit   string `gorm:"type:text;column:bonus_withdrawal_unit"` // ← no enum

	UsdtWithdrawalEnabled bool `gorm:"column:usdt_withdrawal_enabled"`
	UsdtInvestmentEnabled bool `gorm:"column:usdt_investment_enabled"`
	TestingMode           bool `gorm:"column:testing_mode"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (settingsSQLite) TableName() string { return "platform_settings" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&investmentSQLite{},
		&walletSQLite{},
		&transactionSQLite{},
		&userSQLite{},
		&planSQLite{},
		&withdrawalSQLite{},
		&settingsSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
