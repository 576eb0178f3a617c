package service

import (
	"testing"

	"ckd-followup-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight *float64
		height *float64
		want   *float64
	}{
		{"both present", f64(70.5), f64(175), f64(70.5 / (1.75 * 1.75))},
		{"weight missing", nil, f64(175), nil},
		{"height missing", f64(70.5), nil, nil},
		{"zero height", f64(70.5), f64(0), nil},
		{"zero weight", f64(0), f64(175), nil},
		{"negative height", f64(70.5), f64(-175), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBMI(tt.weight, tt.height)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.001)
		})
	}
}

func newRecordService() (*RecordService, *fakePatientRepo, *fakeRecordRepo) {
	patientRepo := newFakePatientRepo()
	recordRepo := newFakeRecordRepo()
	return NewRecordService(recordRepo, patientRepo), patientRepo, recordRepo
}

func seedPatient(t *testing.T, repo *fakePatientRepo) uint {
	t.Helper()
	patient, err := NewPatientService(repo, newFakeRecordRepo()).
		Create(PatientInput{Name: "Wang Ming", Gender: "male"}, 1)
	require.NoError(t, err)
	return patient.ID
}

func TestRecordCreateComputesBMI(t *testing.T) {
	svc, patientRepo, _ := newRecordService()
	patientID := seedPatient(t, patientRepo)

	record, err := svc.Create(RecordInput{
		PatientID:    "1",
		FollowupDate: "2024-11-01",
		BodyWeight:   "70.5",
		Height:       "175",
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, patientID, record.PatientID)
	require.NotNil(t, record.BMI)
	assert.InDelta(t, 23.02, *record.BMI, 0.01)
}

func TestRecordCreateDefensiveNumericParsing(t *testing.T) {
	svc, patientRepo, _ := newRecordService()
	seedPatient(t, patientRepo)

	record, err := svc.Create(RecordInput{
		PatientID:    "1",
		FollowupDate: "2024-11-01",
		HeartRate:    "not-a-number",
		BodyWeight:   "abc",
		Height:       "175",
		EGFR:         "85.5",
	}, 2)
	require.NoError(t, err)
	assert.Nil(t, record.HeartRate)
	assert.Nil(t, record.BodyWeight)
	assert.Nil(t, record.BMI, "BMI must be absent when weight failed to parse")
	require.NotNil(t, record.EGFR)
	assert.Equal(t, 85.5, *record.EGFR)
}

func TestRecordCreateRequiresParsableDate(t *testing.T) {
	svc, patientRepo, recordRepo := newRecordService()
	seedPatient(t, patientRepo)

	_, err := svc.Create(RecordInput{PatientID: "1", FollowupDate: "01/11/2024"}, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(RecordInput{PatientID: "1"}, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	assert.Empty(t, recordRepo.records, "failed creates must not touch the store")
}

func TestRecordCreateRejectsMalformedNextDate(t *testing.T) {
	svc, patientRepo, _ := newRecordService()
	seedPatient(t, patientRepo)

	_, err := svc.Create(RecordInput{
		PatientID:        "1",
		FollowupDate:     "2024-11-01",
		NextFollowupDate: "soon",
	}, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRecordCreateUnknownPatient(t *testing.T) {
	svc, _, _ := newRecordService()

	_, err := svc.Create(RecordInput{PatientID: "99", FollowupDate: "2024-11-01"}, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRecordUpdateKeepsPatient(t *testing.T) {
	svc, patientRepo, _ := newRecordService()
	patientID := seedPatient(t, patientRepo)

	created, err := svc.Create(RecordInput{PatientID: "1", FollowupDate: "2024-11-01"}, 2)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, RecordInput{
		PatientID:    "42", // a different patient reference is ignored on edit
		FollowupDate: "2024-11-08",
		Symptoms:     "mild edema",
	})
	require.NoError(t, err)
	assert.Equal(t, patientID, updated.PatientID)
	require.NotNil(t, updated.Symptoms)
	assert.Equal(t, "mild edema", *updated.Symptoms)
}

func TestRecordDeleteReturnsPatient(t *testing.T) {
	svc, patientRepo, recordRepo := newRecordService()
	patientID := seedPatient(t, patientRepo)

	created, err := svc.Create(RecordInput{PatientID: "1", FollowupDate: "2024-11-01"}, 2)
	require.NoError(t, err)

	gotPatientID, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, patientID, gotPatientID)
	assert.Empty(t, recordRepo.records)
}
