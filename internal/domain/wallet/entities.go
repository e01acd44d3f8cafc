package wallet

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoLockedBonus       = errors.New("no locked bonus available")
)

// BonusSource distinguishes the two locked sub-balances.
type BonusSource string

const (
	BonusWelcome  BonusSource = "welcome"
	BonusReferral BonusSource = "referral"
)

// Wallet is the single per-user main wallet. Spendable balances, locked
// bonus sub-balances and running totals live on one row so every mutation
// is a single-document update.
type Wallet struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	WalletID string `gorm:"size:32;uniqueIndex:ux_wallets_wallet_id" json:"wallet_id"`
	UserID   string `gorm:"size:32;uniqueIndex:ux_wallets_user_id" json:"user_id"`

	NairaBalance float64 `gorm:"type:decimal(18,8);default:0" json:"naira_balance"`
	UsdtBalance  float64 `gorm:"type:decimal(18,8);default:0" json:"usdt_balance"`

	// Locked bonus sub-balances. The aggregates must always equal the sum
	// of their welcome and referral parts.
	LockedNairaWelcomeBonuses  float64 `gorm:"type:decimal(18,8);default:0" json:"locked_naira_welcome_bonuses"`
	LockedNairaReferralBonuses float64 `gorm:"type:decimal(18,8);default:0" json:"locked_naira_referral_bonuses"`
	LockedNairaBonuses         float64 `gorm:"type:decimal(18,8);default:0" json:"locked_naira_bonuses"`
	LockedUsdtWelcomeBonuses   float64 `gorm:"type:decimal(18,8);default:0" json:"locked_usdt_welcome_bonuses"`
	LockedUsdtReferralBonuses  float64 `gorm:"type:decimal(18,8);default:0" json:"locked_usdt_referral_bonuses"`
	LockedUsdtBonuses          float64 `gorm:"type:decimal(18,8);default:0" json:"locked_usdt_bonuses"`

	TotalDeposits         float64 `gorm:"type:decimal(18,2);default:0" json:"total_deposits"`
	TotalWithdrawals      float64 `gorm:"type:decimal(18,2);default:0" json:"total_withdrawals"`
	TotalEarnings         float64 `gorm:"type:decimal(18,8);default:0" json:"total_earnings"`
	TotalBonuses          float64 `gorm:"type:decimal(18,2);default:0" json:"total_bonuses"`
	TotalReferralEarnings float64 `gorm:"type:decimal(18,2);default:0" json:"total_referral_earnings"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Wallet) TableName() string { return "wallets" }
