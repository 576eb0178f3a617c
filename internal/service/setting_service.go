package service

import (
	"strings"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
)

type SettingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// List returns all settings ordered by key
func (s *SettingService) List() ([]models.SystemSetting, error) {
	settings, err := s.settingRepo.ListSettings()
	if err != nil {
		return nil, apperr.Internal("failed to fetch settings", err)
	}
	return settings, nil
}

// Create adds a new key/value pair. Duplicate keys are rejected before the
// insert.
func (s *SettingService) Create(key, value, description string, updatedBy uint) (*models.SystemSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperr.Validation("setting key is required")
	}

	if _, err := s.settingRepo.FindSettingByKey(key); err == nil {
		return nil, apperr.Conflict("setting key already exists")
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, apperr.Internal("failed to check setting key", err)
	}

	setting := &models.SystemSetting{
		Key:         key,
		Value:       optionalString(value),
		Description: optionalString(description),
		UpdatedBy:   &updatedBy,
	}
	if err := s.settingRepo.CreateSetting(setting); err != nil {
		return nil, apperr.Internal("failed to create setting", err)
	}
	return setting, nil
}

// Update overwrites a setting's value and description, stamping the
// updating user. The key itself never changes.
func (s *SettingService) Update(id uint, value, description string, updatedBy uint) (*models.SystemSetting, error) {
	setting, err := s.settingRepo.GetSettingByID(id)
	if err != nil {
		return nil, err
	}

	setting.Value = optionalString(value)
	setting.Description = optionalString(description)
	setting.UpdatedBy = &updatedBy

	if err := s.settingRepo.UpdateSetting(setting); err != nil {
		return nil, apperr.Internal("failed to update setting", err)
	}
	return setting, nil
}

// Delete removes a setting
func (s *SettingService) Delete(id uint) error {
	if _, err := s.settingRepo.GetSettingByID(id); err != nil {
		return err
	}
	if err := s.settingRepo.DeleteSetting(id); err != nil {
		return apperr.Internal("failed to delete setting", err)
	}
	return nil
}
