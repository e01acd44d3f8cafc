package mysql

import (
	"context"
	"time"

	userDomain "vestra-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// StampFirstActiveInvestment writes the anchor only when it is still NULL,
// so a second investment can never move it.
func (r *UserRepository) StampFirstActiveInvestment(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("user_id = ? AND first_active_investment_date IS NULL", userID).
		UpdateColumn("first_active_investment_date", at).Error
}
