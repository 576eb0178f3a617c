package service

import (
	"strconv"
	"strings"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
)

type RecordService struct {
	recordRepo  repository.RecordRepository
	patientRepo repository.PatientRepository
}

func NewRecordService(recordRepo repository.RecordRepository, patientRepo repository.PatientRepository) *RecordService {
	return &RecordService{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
	}
}

// RecordInput carries the raw form values of a follow-up record submission.
// Dates must parse when present; every other optional field degrades to nil.
type RecordInput struct {
	PatientID    string
	FollowupDate string
	FollowupType string

	Symptoms      string
	BloodPressure string
	HeartRate     string
	BodyWeight    string
	Height        string

	UrineProtein                string
	UrineRBC                    string
	UrineProtein24h             string
	UrineProteinCreatinineRatio string
	SerumCreatinine             string
	EGFR                        string
	SerumAlbumin                string
	Hemoglobin                  string
	IgALevel                    string

	Medications          string
	MedicationCompliance string
	Notes                string
	NextFollowupDate     string
}

// ComputeBMI returns weight / height_m^2, or nil unless both weight and
// height are present and positive. Height is in centimeters.
func ComputeBMI(weight, height *float64) *float64 {
	if weight == nil || height == nil || *weight <= 0 || *height <= 0 {
		return nil
	}
	heightM := *height / 100
	bmi := *weight / (heightM * heightM)
	return &bmi
}

// applyInput validates and copies form values onto a record row. The
// patient reference is handled by the caller.
func (s *RecordService) applyInput(record *models.FollowupRecord, input RecordInput) error {
	if strings.TrimSpace(input.FollowupDate) == "" {
		return apperr.Validation("follow-up date is required")
	}
	followupDate, err := parseDate(input.FollowupDate)
	if err != nil {
		return apperr.Validation("invalid follow-up date")
	}
	nextDate, err := optionalDate(input.NextFollowupDate)
	if err != nil {
		return apperr.Validation("invalid next follow-up date")
	}

	weight := optionalFloat(input.BodyWeight)
	height := optionalFloat(input.Height)

	record.FollowupDate = followupDate
	record.FollowupType = optionalString(input.FollowupType)
	record.Symptoms = optionalString(input.Symptoms)
	record.BloodPressure = optionalString(input.BloodPressure)
	record.HeartRate = optionalInt(input.HeartRate)
	record.BodyWeight = weight
	record.Height = height
	record.BMI = ComputeBMI(weight, height)
	record.UrineProtein = optionalString(input.UrineProtein)
	record.UrineRBC = optionalString(input.UrineRBC)
	record.UrineProtein24h = optionalFloat(input.UrineProtein24h)
	record.UrineProteinCreatinineRatio = optionalFloat(input.UrineProteinCreatinineRatio)
	record.SerumCreatinine = optionalFloat(input.SerumCreatinine)
	record.EGFR = optionalFloat(input.EGFR)
	record.SerumAlbumin = optionalFloat(input.SerumAlbumin)
	record.Hemoglobin = optionalFloat(input.Hemoglobin)
	record.IgALevel = optionalFloat(input.IgALevel)
	record.Medications = optionalString(input.Medications)
	record.MedicationCompliance = optionalString(input.MedicationCompliance)
	record.Notes = optionalString(input.Notes)
	record.NextFollowupDate = nextDate
	return nil
}

// Create registers a follow-up visit for an existing patient
func (s *RecordService) Create(input RecordInput, recordedBy uint) (*models.FollowupRecord, error) {
	patientID, err := strconv.ParseUint(strings.TrimSpace(input.PatientID), 10, 32)
	if err != nil {
		return nil, apperr.Validation("invalid patient")
	}
	if _, err := s.patientRepo.GetPatientByID(uint(patientID)); err != nil {
		return nil, err
	}

	record := &models.FollowupRecord{
		PatientID:  uint(patientID),
		RecordedBy: &recordedBy,
	}
	if err := s.applyInput(record, input); err != nil {
		return nil, err
	}

	if err := s.recordRepo.CreateRecord(record); err != nil {
		return nil, apperr.Internal("failed to create follow-up record", err)
	}
	return record, nil
}

// Update edits an existing record in place. The record keeps its patient.
func (s *RecordService) Update(id uint, input RecordInput) (*models.FollowupRecord, error) {
	record, err := s.recordRepo.GetRecordByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(record, input); err != nil {
		return nil, err
	}

	if err := s.recordRepo.UpdateRecord(record); err != nil {
		return nil, apperr.Internal("failed to update follow-up record", err)
	}
	return record, nil
}

// Get returns a single follow-up record
func (s *RecordService) Get(id uint) (*models.FollowupRecord, error) {
	return s.recordRepo.GetRecordByID(id)
}

// List returns one page of records matching the optional search term and
// patient filter
func (s *RecordService) List(search string, patientID uint, page int) ([]models.FollowupRecord, Pagination, error) {
	page = normalizePage(page)
	records, total, err := s.recordRepo.ListRecords(search, patientID, page, DefaultPerPage)
	if err != nil {
		return nil, Pagination{}, apperr.Internal("failed to fetch follow-up records", err)
	}
	return records, paginate(page, total), nil
}

// Delete removes a single follow-up record and returns its patient ID so the
// caller can navigate back to the patient
func (s *RecordService) Delete(id uint) (uint, error) {
	record, err := s.recordRepo.GetRecordByID(id)
	if err != nil {
		return 0, err
	}
	if err := s.recordRepo.DeleteRecord(id); err != nil {
		return 0, apperr.Internal("failed to delete follow-up record", err)
	}
	return record.PatientID, nil
}
