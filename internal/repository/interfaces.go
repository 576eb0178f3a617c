package repository

import (
	"time"

	"ckd-followup-backend/internal/models"
)

// UserRepository provides access to staff accounts
type UserRepository interface {
	FindUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ListUsers(search string, page, perPage int) ([]models.User, int64, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	CountUsers() (int64, error)
}

// PatientRepository provides access to patients
type PatientRepository interface {
	GetPatientByID(id uint) (*models.Patient, error)
	GetLastPatient() (*models.Patient, error)
	ListPatients(search string, page, perPage int) ([]models.Patient, int64, error)
	ListPatientsByName() ([]models.Patient, error)
	CreatePatient(patient *models.Patient) error
	UpdatePatient(patient *models.Patient) error
	DeletePatient(id uint) error
	CountPatients() (int64, error)
}

// RecordRepository provides access to follow-up records
type RecordRepository interface {
	GetRecordByID(id uint) (*models.FollowupRecord, error)
	ListRecords(search string, patientID uint, page, perPage int) ([]models.FollowupRecord, int64, error)
	ListRecordsByPatient(patientID uint) ([]models.FollowupRecord, error)
	CreateRecord(record *models.FollowupRecord) error
	UpdateRecord(record *models.FollowupRecord) error
	DeleteRecord(id uint) error
	CountRecords() (int64, error)
	RecentRecords(limit int) ([]models.FollowupRecord, error)
	UpcomingFollowups(from, to time.Time, limit int) ([]models.FollowupRecord, error)
}

// SettingRepository provides access to system settings
type SettingRepository interface {
	GetSettingByID(id uint) (*models.SystemSetting, error)
	FindSettingByKey(key string) (*models.SystemSetting, error)
	ListSettings() ([]models.SystemSetting, error)
	CreateSetting(setting *models.SystemSetting) error
	UpdateSetting(setting *models.SystemSetting) error
	DeleteSetting(id uint) error
}
