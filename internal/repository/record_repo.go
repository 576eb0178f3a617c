package repository

import (
	"errors"
	"time"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/apperr"

	"gorm.io/gorm"
)

type recordRepo struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

// GetRecordByID retrieves a follow-up record by ID with its patient preloaded
func (r *recordRepo) GetRecordByID(id uint) (*models.FollowupRecord, error) {
	var record models.FollowupRecord
	err := r.db.Preload("Patient").First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("follow-up record")
		}
		return nil, err
	}
	return &record, nil
}

// ListRecords returns a page of follow-up records, most recent visit first.
// An optional search term matches the parent patient's code or name, and an
// optional patientID restricts the listing to one patient.
func (r *recordRepo) ListRecords(search string, patientID uint, page, perPage int) ([]models.FollowupRecord, int64, error) {
	query := r.db.Model(&models.FollowupRecord{})
	if search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("INNER JOIN patients ON patients.id = followup_records.patient_id").
			Where("patients.patient_id LIKE ? OR patients.name LIKE ?", like, like)
	}
	if patientID != 0 {
		query = query.Where("followup_records.patient_id = ?", patientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.FollowupRecord
	err := query.Preload("Patient").
		Order("followup_records.followup_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&records).Error
	return records, total, err
}

// ListRecordsByPatient returns all records of one patient, most recent first
func (r *recordRepo) ListRecordsByPatient(patientID uint) ([]models.FollowupRecord, error) {
	var records []models.FollowupRecord
	err := r.db.Where("patient_id = ?", patientID).
		Order("followup_date DESC").
		Find(&records).Error
	return records, err
}

// CreateRecord creates a new follow-up record
func (r *recordRepo) CreateRecord(record *models.FollowupRecord) error {
	return r.db.Create(record).Error
}

// UpdateRecord saves an existing follow-up record
func (r *recordRepo) UpdateRecord(record *models.FollowupRecord) error {
	return r.db.Save(record).Error
}

// DeleteRecord deletes a single follow-up record
func (r *recordRepo) DeleteRecord(id uint) error {
	return r.db.Delete(&models.FollowupRecord{}, id).Error
}

// CountRecords returns the total number of follow-up record rows
func (r *recordRepo) CountRecords() (int64, error) {
	var count int64
	err := r.db.Model(&models.FollowupRecord{}).Count(&count).Error
	return count, err
}

// RecentRecords returns the most recent visits for the dashboard
func (r *recordRepo) RecentRecords(limit int) ([]models.FollowupRecord, error) {
	var records []models.FollowupRecord
	err := r.db.Preload("Patient").
		Order("followup_date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// UpcomingFollowups returns records whose next follow-up date falls inside
// [from, to], soonest first
func (r *recordRepo) UpcomingFollowups(from, to time.Time, limit int) ([]models.FollowupRecord, error) {
	var records []models.FollowupRecord
	err := r.db.Preload("Patient").
		Where("next_followup_date IS NOT NULL AND next_followup_date >= ? AND next_followup_date <= ?", from, to).
		Order("next_followup_date ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
