package service

import (
	"time"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/internal/repository"
	"ckd-followup-backend/pkg/apperr"
)

const dashboardListLimit = 10

type DashboardService struct {
	patientRepo repository.PatientRepository
	recordRepo  repository.RecordRepository
}

func NewDashboardService(patientRepo repository.PatientRepository, recordRepo repository.RecordRepository) *DashboardService {
	return &DashboardService{
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
	}
}

// Summary aggregates the dashboard view: totals, the latest visits and the
// follow-ups due within the next seven days
type Summary struct {
	TotalPatients     int64                   `json:"total_patients"`
	TotalRecords      int64                   `json:"total_records"`
	RecentRecords     []models.FollowupRecord `json:"recent_records"`
	UpcomingFollowups []models.FollowupRecord `json:"upcoming_followups"`
}

func (s *DashboardService) Summary() (*Summary, error) {
	totalPatients, err := s.patientRepo.CountPatients()
	if err != nil {
		return nil, apperr.Internal("failed to count patients", err)
	}
	totalRecords, err := s.recordRepo.CountRecords()
	if err != nil {
		return nil, apperr.Internal("failed to count follow-up records", err)
	}

	recent, err := s.recordRepo.RecentRecords(dashboardListLimit)
	if err != nil {
		return nil, apperr.Internal("failed to fetch recent records", err)
	}

	today := startOfDay(time.Now())
	upcoming, err := s.recordRepo.UpcomingFollowups(today, today.AddDate(0, 0, 7), dashboardListLimit)
	if err != nil {
		return nil, apperr.Internal("failed to fetch upcoming follow-ups", err)
	}

	return &Summary{
		TotalPatients:     totalPatients,
		TotalRecords:      totalRecords,
		RecentRecords:     recent,
		UpcomingFollowups: upcoming,
	}, nil
}
