package repository

import (
	"errors"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/apperr"

	"gorm.io/gorm"
)

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

// GetSettingByID retrieves a setting by ID
func (r *settingRepo) GetSettingByID(id uint) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.First(&setting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("setting")
		}
		return nil, err
	}
	return &setting, nil
}

// FindSettingByKey finds a setting by its unique key
func (r *settingRepo) FindSettingByKey(key string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.Where("`key` = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("setting")
		}
		return nil, err
	}
	return &setting, nil
}

// ListSettings returns all settings ordered by key
func (r *settingRepo) ListSettings() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.Order("`key` ASC").Find(&settings).Error
	return settings, err
}

// CreateSetting creates a new setting
func (r *settingRepo) CreateSetting(setting *models.SystemSetting) error {
	return r.db.Create(setting).Error
}

// UpdateSetting saves an existing setting
func (r *settingRepo) UpdateSetting(setting *models.SystemSetting) error {
	return r.db.Save(setting).Error
}

// DeleteSetting deletes a setting
func (r *settingRepo) DeleteSetting(id uint) error {
	return r.db.Delete(&models.SystemSetting{}, id).Error
}
