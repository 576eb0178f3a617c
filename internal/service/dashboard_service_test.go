package service

import (
	"testing"
	"time"

	"ckd-followup-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	patientRepo := newFakePatientRepo()
	recordRepo := newFakeRecordRepo()
	svc := NewDashboardService(patientRepo, recordRepo)

	require.NoError(t, patientRepo.CreatePatient(&models.Patient{PatientID: "IGA-000001", Name: "Wang Ming", Gender: "male"}))

	today := startOfDay(time.Now())
	soon := today.AddDate(0, 0, 3)
	farOut := today.AddDate(0, 0, 30)
	past := today.AddDate(0, 0, -3)

	for _, next := range []*time.Time{&soon, &farOut, &past, nil} {
		require.NoError(t, recordRepo.CreateRecord(&models.FollowupRecord{
			PatientID:        1,
			FollowupDate:     today.AddDate(0, 0, -10),
			NextFollowupDate: next,
		}))
	}

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalPatients)
	assert.Equal(t, int64(4), summary.TotalRecords)
	assert.Len(t, summary.RecentRecords, 4)
	// Only the follow-up due within the next seven days qualifies
	require.Len(t, summary.UpcomingFollowups, 1)
	assert.Equal(t, soon, *summary.UpcomingFollowups[0].NextFollowupDate)
}
