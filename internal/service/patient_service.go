package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
)

// PatientCodePrefix is the fixed prefix of generated patient codes
const PatientCodePrefix = "IGA"

type PatientService struct {
	patientRepo repository.PatientRepository
	recordRepo  repository.RecordRepository
}

func NewPatientService(patientRepo repository.PatientRepository, recordRepo repository.RecordRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
	}
}

// PatientInput carries the raw form values of a patient create/edit
// submission. Optional fields normalize to nil when empty.
type PatientInput struct {
	Name            string
	Gender          string
	BirthDate       string
	Age             string
	IDCard          string
	Phone           string
	Address         string
	Diagnosis       string
	DiagnosisDate   string
	InitialSymptoms string
	Comorbidities   string
	FamilyHistory   string
}

// NextPatientCode derives the next patient code from the last assigned one.
// The numeric suffix after the final dash is incremented and zero-padded to
// six digits; an empty or dash-less last code starts the sequence over.
func NextPatientCode(lastCode string) string {
	lastID := 0
	if idx := strings.LastIndex(lastCode, "-"); idx >= 0 {
		if n, err := strconv.Atoi(lastCode[idx+1:]); err == nil {
			lastID = n
		}
	}
	return fmt.Sprintf("%s-%06d", PatientCodePrefix, lastID+1)
}

// AgeFromBirthDate computes full years elapsed between birth date and today
func AgeFromBirthDate(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// applyInput validates and copies form values onto a patient row
func (s *PatientService) applyInput(patient *models.Patient, input PatientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperr.Validation("patient name is required")
	}
	if strings.TrimSpace(input.Gender) == "" {
		return apperr.Validation("patient gender is required")
	}

	birthDate, err := optionalDate(input.BirthDate)
	if err != nil {
		return apperr.Validation("invalid birth date")
	}
	diagnosisDate, err := optionalDate(input.DiagnosisDate)
	if err != nil {
		return apperr.Validation("invalid diagnosis date")
	}

	// Age is derived from the birth date when present, otherwise taken from
	// the explicit form value
	var age *int
	if birthDate != nil {
		a := AgeFromBirthDate(*birthDate, time.Now())
		age = &a
	} else if strings.TrimSpace(input.Age) != "" {
		a, err := strconv.Atoi(strings.TrimSpace(input.Age))
		if err != nil {
			return apperr.Validation("invalid age")
		}
		age = &a
	}

	patient.Name = strings.TrimSpace(input.Name)
	patient.Gender = strings.TrimSpace(input.Gender)
	patient.BirthDate = birthDate
	patient.Age = age
	patient.IDCard = optionalString(input.IDCard)
	patient.Phone = optionalString(input.Phone)
	patient.Address = optionalString(input.Address)
	patient.Diagnosis = optionalString(input.Diagnosis)
	patient.DiagnosisDate = diagnosisDate
	patient.InitialSymptoms = optionalString(input.InitialSymptoms)
	patient.Comorbidities = optionalString(input.Comorbidities)
	patient.FamilyHistory = optionalString(input.FamilyHistory)
	return nil
}

// Create registers a new patient with a freshly generated patient code
func (s *PatientService) Create(input PatientInput, createdBy uint) (*models.Patient, error) {
	last, err := s.patientRepo.GetLastPatient()
	if err != nil {
		return nil, apperr.Internal("failed to generate patient code", err)
	}
	lastCode := ""
	if last != nil {
		lastCode = last.PatientID
	}

	patient := &models.Patient{
		PatientID: NextPatientCode(lastCode),
		CreatedBy: &createdBy,
	}
	if err := s.applyInput(patient, input); err != nil {
		return nil, err
	}

	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return nil, apperr.Internal("failed to create patient", err)
	}
	return patient, nil
}

// Update edits an existing patient in place. The patient code is immutable.
func (s *PatientService) Update(id uint, input PatientInput) (*models.Patient, error) {
	patient, err := s.patientRepo.GetPatientByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(patient, input); err != nil {
		return nil, err
	}

	if err := s.patientRepo.UpdatePatient(patient); err != nil {
		return nil, apperr.Internal("failed to update patient", err)
	}
	return patient, nil
}

// Find returns a patient without loading its follow-up records
func (s *PatientService) Find(id uint) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// Get returns a patient together with its follow-up records, newest first
func (s *PatientService) Get(id uint) (*models.Patient, []models.FollowupRecord, error) {
	patient, err := s.patientRepo.GetPatientByID(id)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.recordRepo.ListRecordsByPatient(id)
	if err != nil {
		return nil, nil, apperr.Internal("failed to fetch follow-up records", err)
	}
	return patient, records, nil
}

// List returns one page of patients matching the optional search term
func (s *PatientService) List(search string, page int) ([]models.Patient, Pagination, error) {
	page = normalizePage(page)
	patients, total, err := s.patientRepo.ListPatients(search, page, DefaultPerPage)
	if err != nil {
		return nil, Pagination{}, apperr.Internal("failed to fetch patients", err)
	}
	return patients, paginate(page, total), nil
}

// ListForSelection returns all patients ordered by name, for record forms
func (s *PatientService) ListForSelection() ([]models.Patient, error) {
	patients, err := s.patientRepo.ListPatientsByName()
	if err != nil {
		return nil, apperr.Internal("failed to fetch patients", err)
	}
	return patients, nil
}

// Delete removes a patient; the store cascades to its follow-up records
func (s *PatientService) Delete(id uint) error {
	if _, err := s.patientRepo.GetPatientByID(id); err != nil {
		return err
	}
	if err := s.patientRepo.DeletePatient(id); err != nil {
		return apperr.Internal("failed to delete patient", err)
	}
	return nil
}
