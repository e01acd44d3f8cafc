package mysql

import (
	"context"
	"errors"

	settingsDomain "vestra-backend/internal/domain/settings"

	"gorm.io/gorm"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the single settings row, seeding defaults on first use.
func (r *SettingsRepository) Get(ctx context.Context) (*settingsDomain.Settings, error) {
	var out settingsDomain.Settings
	err := r.db.WithContext(ctx).Order("id ASC").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := settingsDomain.Defaults()
		if cerr := r.db.WithContext(ctx).Create(def).Error; cerr != nil {
			return nil, cerr
		}
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *settingsDomain.Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
