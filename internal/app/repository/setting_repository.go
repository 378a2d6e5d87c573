package repository

import (
	"errors"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Upsert(key, value string) error
	Get(key string) (string, error)
	GetAll() (map[string]string, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Upsert inserts the setting or replaces its value on key conflict.
func (r *settingRepository) Upsert(key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		logger.Error("Failed to upsert setting in database", err, map[string]interface{}{
			"key": key,
		})
		return err
	}
	return nil
}

// Get returns the value for key, or "" when the key does not exist.
func (r *settingRepository) Get(key string) (string, error) {
	var setting model.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		logger.Error("Failed to get setting from database", err, map[string]interface{}{
			"key": key,
		})
		return "", err
	}
	return setting.Value, nil
}

func (r *settingRepository) GetAll() (map[string]string, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		logger.Error("Failed to list settings from database", err)
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}
