package plan

import "context"

type Repository interface {
	GetByPlanID(ctx context.Context, planID string) (*Plan, error)
	ListActive(ctx context.Context) ([]Plan, error)
}
