package withdrawal

import (
	"errors"
	"time"

	"vestra-backend/internal/domain/currency"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("withdrawal not found")
	ErrAmountOutOfBounds    = errors.New("amount outside withdrawal limits")
	ErrInsufficientEarnings = errors.New("insufficient ROI earnings")
	ErrNoActiveInvestment   = errors.New("no active investment")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Withdrawal is debited from the wallet at request time; the payout
// provider reports the final outcome through a webhook addressed by
// Reference.
type Withdrawal struct {
	ID           uint64            `gorm:"primaryKey;column:id" json:"-"`
	WithdrawalID string            `gorm:"size:32;uniqueIndex:ux_withdrawals_withdrawal_id" json:"withdrawal_id"`
	UserID       string            `gorm:"size:32;index:idx_withdrawals_user" json:"user_id"`
	Reference    string            `gorm:"size:32;uniqueIndex:ux_withdrawals_reference" json:"reference"`
	Amount       float64           `gorm:"type:decimal(18,2)" json:"amount"`
	Fee          float64           `gorm:"type:decimal(18,2)" json:"fee"`
	NetAmount    float64           `gorm:"type:decimal(18,2)" json:"net_amount"`
	Currency     currency.Currency `gorm:"type:enum('naira','usdt');default:'naira'" json:"currency"`
	Status       Status            `gorm:"type:enum('pending','processing','completed','failed','cancelled');default:'pending'" json:"status"`
	// TransactionID links the pending audit row created with the request.
	TransactionID string     `gorm:"size:32;index" json:"transaction_id"`
	FailureReason string     `gorm:"type:text" json:"failure_reason,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Withdrawal) TableName() string { return "withdrawals" }
