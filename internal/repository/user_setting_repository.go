package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"docflow/internal/model"
)

type UserSettingRepository struct {
	db *gorm.DB
}

func NewUserSettingRepository(db *gorm.DB) *UserSettingRepository {
	return &UserSettingRepository{db: db}
}

func (r *UserSettingRepository) GetByUserID(userID uint) (*model.UserSetting, error) {
	var setting model.UserSetting
	if err := r.db.Where("user_id = ?", userID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user setting failed: %w", err)
	}
	return &setting, nil
}

func (r *UserSettingRepository) Upsert(setting *model.UserSetting) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "theme", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("upsert user setting failed: %w", err)
	}
	return nil
}

func (r *UserSettingRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.UserSetting{}).Error; err != nil {
		return fmt.Errorf("delete user setting failed: %w", err)
	}
	return nil
}
