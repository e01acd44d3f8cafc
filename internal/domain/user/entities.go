package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

// User carries only the bonus-eligibility subset of the account entity;
// authentication and profile data live in a separate service.
type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email  string `gorm:"size:191;index" json:"email"`

	// FirstActiveInvestmentDate anchors bonus maturity. Stamped once, the
	// first time any investment of the user goes active, never overwritten.
	FirstActiveInvestmentDate *time.Time `json:"first_active_investment_date,omitempty"`
	WelcomeBonusGiven         bool       `gorm:"default:false" json:"welcome_bonus_given"`
	LastBonusWithdrawalDate   *time.Time `json:"last_bonus_withdrawal_date,omitempty"`

	// ReferredBy is the referrer's user ID; ReferralBonusGiven flips true
	// when the referrer has been granted the once-only referral bonus for
	// this relationship.
	ReferredBy         *string `gorm:"size:32;index" json:"referred_by,omitempty"`
	ReferralBonusGiven bool    `gorm:"default:false" json:"referral_bonus_given"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
