package database

import (
	"time"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/utils"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func datePtr(t time.Time) *time.Time { return &t }

// seedUsers builds the demo staff accounts: an administrator, a doctor and a
// nurse. The doctor authors the demo patients and records.
func seedUsers(adminHash, staffHash string) []models.User {
	return []models.User{
		{
			Username:     "admin",
			PasswordHash: adminHash,
			RealName:     "System Administrator",
			Role:         models.RoleAdmin,
			Department:   strPtr("IT Department"),
			IsActive:     true,
		},
		{
			Username:     "doctor1",
			PasswordHash: staffHash,
			RealName:     "Dr. Zhang",
			Role:         models.RoleDoctor,
			Department:   strPtr("Nephrology"),
			Phone:        strPtr("13800138001"),
			Email:        strPtr("doctor1@hospital.com"),
			IsActive:     true,
		},
		{
			Username:     "nurse1",
			PasswordHash: staffHash,
			RealName:     "Nurse Li",
			Role:         models.RoleNurse,
			Department:   strPtr("Nephrology"),
			Phone:        strPtr("13800138002"),
			IsActive:     true,
		},
	}
}

// seedPatients builds the three demo patients, attributed to creatorID
func seedPatients(creatorID uint) []models.Patient {
	return []models.Patient{
		{
			PatientID:       "IGA-000001",
			Name:            "Wang Ming",
			Gender:          "male",
			BirthDate:       datePtr(time.Date(1980, 5, 15, 0, 0, 0, 0, time.UTC)),
			Age:             intPtr(44),
			IDCard:          strPtr("110101198005150001"),
			Phone:           strPtr("13900139001"),
			Address:         strPtr("Chaoyang District, Beijing"),
			Diagnosis:       strPtr("IgA nephropathy"),
			DiagnosisDate:   datePtr(time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)),
			InitialSymptoms: strPtr("Hematuria, proteinuria"),
			Comorbidities:   strPtr("Hypertension"),
			FamilyHistory:   strPtr("None"),
			CreatedBy:       &creatorID,
		},
		{
			PatientID:       "IGA-000002",
			Name:            "Li Hong",
			Gender:          "female",
			BirthDate:       datePtr(time.Date(1990, 8, 20, 0, 0, 0, 0, time.UTC)),
			Age:             intPtr(34),
			IDCard:          strPtr("110101199008200002"),
			Phone:           strPtr("13900139002"),
			Address:         strPtr("Haidian District, Beijing"),
			Diagnosis:       strPtr("IgA nephropathy"),
			DiagnosisDate:   datePtr(time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)),
			InitialSymptoms: strPtr("Proteinuria, edema"),
			Comorbidities:   strPtr("None"),
			FamilyHistory:   strPtr("None"),
			CreatedBy:       &creatorID,
		},
		{
			PatientID:       "IGA-000003",
			Name:            "Zhang Qiang",
			Gender:          "male",
			BirthDate:       datePtr(time.Date(1975, 12, 5, 0, 0, 0, 0, time.UTC)),
			Age:             intPtr(49),
			IDCard:          strPtr("110101197512050003"),
			Phone:           strPtr("13900139003"),
			Address:         strPtr("Xicheng District, Beijing"),
			Diagnosis:       strPtr("IgA nephropathy"),
			DiagnosisDate:   datePtr(time.Date(2019, 9, 20, 0, 0, 0, 0, time.UTC)),
			InitialSymptoms: strPtr("Hematuria, proteinuria, hypertension"),
			Comorbidities:   strPtr("Hypertension, diabetes"),
			FamilyHistory:   strPtr("Father has kidney disease"),
			CreatedBy:       &creatorID,
		},
	}
}

// seedRecords builds the four demo follow-up visits for the given patient
// IDs, dated relative to today: two past visits for the first patient and
// one each for the other two, with next follow-ups spread around today
func seedRecords(today time.Time, patientIDs []uint, recorderID uint) []models.FollowupRecord {
	return []models.FollowupRecord{
		{
			PatientID:            patientIDs[0],
			FollowupDate:         today.AddDate(0, 0, -30),
			FollowupType:         strPtr("outpatient"),
			Symptoms:             strPtr("No notable discomfort"),
			BloodPressure:        strPtr("130/80"),
			HeartRate:            intPtr(72),
			BodyWeight:           floatPtr(70.5),
			Height:               floatPtr(175),
			BMI:                  floatPtr(23.0),
			UrineProtein:         strPtr("1+"),
			UrineRBC:             strPtr("10-15/HP"),
			SerumCreatinine:      floatPtr(95.0),
			EGFR:                 floatPtr(85.5),
			SerumAlbumin:         floatPtr(42.0),
			Hemoglobin:           floatPtr(145.0),
			IgALevel:             floatPtr(2.5),
			Medications:          strPtr("ACE inhibitor"),
			MedicationCompliance: strPtr("good"),
			Notes:                strPtr("Condition stable, continue current treatment"),
			NextFollowupDate:     datePtr(today.AddDate(0, 0, 30)),
			RecordedBy:           &recorderID,
		},
		{
			PatientID:            patientIDs[0],
			FollowupDate:         today.AddDate(0, 0, -60),
			FollowupType:         strPtr("outpatient"),
			Symptoms:             strPtr("Occasional fatigue"),
			BloodPressure:        strPtr("135/85"),
			HeartRate:            intPtr(75),
			BodyWeight:           floatPtr(71.0),
			Height:               floatPtr(175),
			BMI:                  floatPtr(23.2),
			UrineProtein:         strPtr("1+"),
			UrineRBC:             strPtr("8-12/HP"),
			SerumCreatinine:      floatPtr(98.0),
			EGFR:                 floatPtr(83.0),
			SerumAlbumin:         floatPtr(41.5),
			Hemoglobin:           floatPtr(142.0),
			IgALevel:             floatPtr(2.6),
			Medications:          strPtr("ACE inhibitor"),
			MedicationCompliance: strPtr("good"),
			Notes:                strPtr("Advised rest and regular review"),
			NextFollowupDate:     datePtr(today.AddDate(0, 0, -30)),
			RecordedBy:           &recorderID,
		},
		{
			PatientID:            patientIDs[1],
			FollowupDate:         today.AddDate(0, 0, -15),
			FollowupType:         strPtr("outpatient"),
			Symptoms:             strPtr("No discomfort"),
			BloodPressure:        strPtr("120/75"),
			HeartRate:            intPtr(68),
			BodyWeight:           floatPtr(58.0),
			Height:               floatPtr(165),
			BMI:                  floatPtr(21.3),
			UrineProtein:         strPtr("+/-"),
			UrineRBC:             strPtr("5-8/HP"),
			SerumCreatinine:      floatPtr(78.0),
			EGFR:                 floatPtr(92.0),
			SerumAlbumin:         floatPtr(45.0),
			Hemoglobin:           floatPtr(128.0),
			IgALevel:             floatPtr(2.2),
			Medications:          strPtr("ARB"),
			MedicationCompliance: strPtr("good"),
			Notes:                strPtr("Condition well controlled"),
			NextFollowupDate:     datePtr(today.AddDate(0, 0, 45)),
			RecordedBy:           &recorderID,
		},
		{
			PatientID:            patientIDs[2],
			FollowupDate:         today.AddDate(0, 0, -7),
			FollowupType:         strPtr("phone"),
			Symptoms:             strPtr("Occasional dizziness"),
			BloodPressure:        strPtr("140/90"),
			HeartRate:            intPtr(80),
			BodyWeight:           floatPtr(75.0),
			Height:               floatPtr(170),
			BMI:                  floatPtr(26.0),
			UrineProtein:         strPtr("2+"),
			UrineRBC:             strPtr("15-20/HP"),
			SerumCreatinine:      floatPtr(110.0),
			EGFR:                 floatPtr(72.0),
			SerumAlbumin:         floatPtr(38.0),
			Hemoglobin:           floatPtr(135.0),
			IgALevel:             floatPtr(3.2),
			Medications:          strPtr("ACE inhibitor, antihypertensive"),
			MedicationCompliance: strPtr("fair"),
			Notes:                strPtr("Blood pressure poorly controlled, adjust medication"),
			NextFollowupDate:     datePtr(today.AddDate(0, 0, 14)),
			RecordedBy:           &recorderID,
		},
	}
}

// Seed populates a fresh database with demo staff, patients and follow-up
// records. It is a no-op when any user row already exists, so it is safe to
// call on every startup.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	staffHash, err := utils.HashPassword("123456")
	if err != nil {
		return err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return db.Transaction(func(tx *gorm.DB) error {
		users := seedUsers(adminHash, staffHash)
		for i := range users {
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}
		doctorID := users[1].ID

		patients := seedPatients(doctorID)
		patientIDs := make([]uint, len(patients))
		for i := range patients {
			if err := tx.Create(&patients[i]).Error; err != nil {
				return err
			}
			patientIDs[i] = patients[i].ID
		}

		for _, record := range seedRecords(today, patientIDs, doctorID) {
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
