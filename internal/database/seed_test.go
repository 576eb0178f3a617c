package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ckd-followup-backend/internal/models"
)

func TestSeedUsers(t *testing.T) {
	users := seedUsers("admin-hash", "staff-hash")
	require.Len(t, users, 3)

	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin-hash", users[0].PasswordHash)

	assert.Equal(t, "doctor1", users[1].Username)
	assert.Equal(t, models.RoleDoctor, users[1].Role)
	assert.Equal(t, "staff-hash", users[1].PasswordHash)

	assert.Equal(t, "nurse1", users[2].Username)
	assert.Equal(t, models.RoleNurse, users[2].Role)
	assert.Equal(t, "staff-hash", users[2].PasswordHash)

	for _, u := range users {
		assert.True(t, u.IsActive, u.Username)
		assert.NotEmpty(t, u.RealName, u.Username)
	}
}

func TestSeedPatients(t *testing.T) {
	patients := seedPatients(7)
	require.Len(t, patients, 3)

	codes := []string{"IGA-000001", "IGA-000002", "IGA-000003"}
	for i, p := range patients {
		assert.Equal(t, codes[i], p.PatientID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Gender)
		require.NotNil(t, p.CreatedBy)
		assert.Equal(t, uint(7), *p.CreatedBy)
	}
}

func TestSeedRecords(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)
	patientIDs := []uint{11, 12, 13}

	records := seedRecords(today, patientIDs, 7)
	require.Len(t, records, 4)

	wantPatients := []uint{11, 11, 12, 13}
	visitOffsets := []int{-30, -60, -15, -7}
	nextOffsets := []int{30, -30, 45, 14}
	for i, r := range records {
		assert.Equal(t, wantPatients[i], r.PatientID, i)
		assert.Equal(t, today.AddDate(0, 0, visitOffsets[i]), r.FollowupDate, i)
		require.NotNil(t, r.NextFollowupDate, i)
		assert.Equal(t, today.AddDate(0, 0, nextOffsets[i]), *r.NextFollowupDate, i)
		require.NotNil(t, r.RecordedBy, i)
		assert.Equal(t, uint(7), *r.RecordedBy, i)
	}
}
