package mysql

import (
	"context"
	"time"

	invDomain "vestra-backend/internal/domain/investment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("investment_id = ?", investmentID).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&invDomain.Investment{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *InvestmentRepository) CountActiveByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&invDomain.Investment{}).
		Where("user_id = ? AND status = ?", userID, invDomain.StatusActive).
		Count(&n).Error
	return n, err
}

func (r *InvestmentRepository) ListDue(ctx context.Context, now time.Time, guard time.Duration) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_roi_cycle_date <= ? AND last_roi_update <= ?",
			invDomain.StatusActive, now, now.Add(-guard)).
		Order("next_roi_cycle_date ASC").
		Find(&out).Error
	return out, err
}

func (r *InvestmentRepository) ListAccruing(ctx context.Context, now time.Time) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date > ? AND next_roi_cycle_date > ?",
			invDomain.StatusActive, now, now).
		Find(&out).Error
	return out, err
}

// AccrueEarned is a blind atomic increment; it deliberately leaves the
// scheduling fields alone so sub-tick accrual never masks a due flush.
func (r *InvestmentRepository) AccrueEarned(ctx context.Context, investmentID string, delta float64) error {
	return r.db.WithContext(ctx).Model(&invDomain.Investment{}).
		Where("investment_id = ? AND status = ?", investmentID, invDomain.StatusActive).
		UpdateColumn("earned_amount", gorm.Expr("earned_amount + ?", delta)).Error
}
