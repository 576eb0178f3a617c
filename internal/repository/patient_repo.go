package repository

import (
	"errors"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/apperr"

	"gorm.io/gorm"
)

type patientRepo struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) PatientRepository {
	return &patientRepo{db: db}
}

// GetPatientByID retrieves a patient by ID
func (r *patientRepo) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("patient")
		}
		return nil, err
	}
	return &patient, nil
}

// GetLastPatient returns the most recently inserted patient, or nil when the
// table is empty. Used for patient code generation.
func (r *patientRepo) GetLastPatient() (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Order("id DESC").First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// ListPatients returns a page of patients, newest first. An optional search
// term matches patient code, name or phone.
func (r *patientRepo) ListPatients(search string, page, perPage int) ([]models.Patient, int64, error) {
	query := r.db.Model(&models.Patient{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("patient_id LIKE ? OR name LIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&patients).Error
	return patients, total, err
}

// ListPatientsByName returns all patients ordered by name, for form selects
func (r *patientRepo) ListPatientsByName() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("name ASC").Find(&patients).Error
	return patients, err
}

// CreatePatient creates a new patient
func (r *patientRepo) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// UpdatePatient saves an existing patient
func (r *patientRepo) UpdatePatient(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// DeletePatient deletes a patient; the store cascades to its follow-up records
func (r *patientRepo) DeletePatient(id uint) error {
	return r.db.Delete(&models.Patient{}, id).Error
}

// CountPatients returns the total number of patient rows
func (r *patientRepo) CountPatients() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}
