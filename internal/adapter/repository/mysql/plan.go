package mysql

import (
	"context"

	planDomain "vestra-backend/internal/domain/plan"

	"gorm.io/gorm"
)

type PlanRepository struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) *PlanRepository { return &PlanRepository{db: db} }

func (r *PlanRepository) GetByPlanID(ctx context.Context, planID string) (*planDomain.Plan, error) {
	var out planDomain.Plan
	res := r.db.WithContext(ctx).Where("plan_id = ?", planID).First(&out)
	return &out, res.Error
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]planDomain.Plan, error) {
	var out []planDomain.Plan
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("min_amount ASC").
		Find(&out).Error
	return out, err
}
