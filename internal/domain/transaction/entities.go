package transaction

import (
	"errors"
	"time"

	"vestra-backend/internal/domain/currency"
)

var ErrNotFound = errors.New("transaction not found")

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeInvestment Type = "investment"
	TypeROI        Type = "roi"
	TypeBonus      Type = "bonus"
	TypeReferral   Type = "referral"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Transaction is the immutable audit record for every balance-affecting
// event. ROI rows double as the idempotency witness for accrual flushes.
type Transaction struct {
	ID            uint64            `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string            `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	UserID        string            `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	InvestmentID  *string           `gorm:"size:32;index:idx_transactions_investment" json:"investment_id,omitempty"`
	WithdrawalID  *string           `gorm:"size:32;index" json:"withdrawal_id,omitempty"`
	Type          Type              `gorm:"type:enum('deposit','withdrawal','investment','roi','bonus','referral');index:idx_transactions_investment" json:"type"`
	Amount        float64           `gorm:"type:decimal(18,8)" json:"amount"`
	Currency      currency.Currency `gorm:"type:enum('naira','usdt');default:'naira'" json:"currency"`
	Status        Status            `gorm:"type:enum('pending','success','failed','cancelled');default:'pending'" json:"status"`
	Narration     string            `gorm:"type:text" json:"narration"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }
