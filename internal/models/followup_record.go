package models

import "time"

// FollowupRecord represents the followup_records table, one clinical visit
// for a patient. Deleting the parent patient cascades here.
type FollowupRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PatientID    uint       `gorm:"not null;index" json:"patient_id"`
	FollowupDate time.Time  `gorm:"type:date;not null" json:"followup_date"`
	FollowupType *string    `gorm:"size:50" json:"followup_type,omitempty"`

	// Symptoms and vitals
	Symptoms      *string  `gorm:"type:text" json:"symptoms,omitempty"`
	BloodPressure *string  `gorm:"size:20" json:"blood_pressure,omitempty"`
	HeartRate     *int     `json:"heart_rate,omitempty"`
	BodyWeight    *float64 `json:"body_weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	BMI           *float64 `json:"bmi,omitempty"`

	// Lab values, stored as submitted, no computation beyond storage
	UrineProtein                *string  `gorm:"size:50" json:"urine_protein,omitempty"`
	UrineRBC                    *string  `gorm:"size:50" json:"urine_rbc,omitempty"`
	UrineProtein24h             *float64 `gorm:"column:urine_protein_24h" json:"urine_protein_24h,omitempty"`
	UrineProteinCreatinineRatio *float64 `json:"urine_protein_creatinine_ratio,omitempty"`
	SerumCreatinine             *float64 `json:"serum_creatinine,omitempty"`
	EGFR                        *float64 `gorm:"column:egfr" json:"egfr,omitempty"`
	SerumAlbumin                *float64 `json:"serum_albumin,omitempty"`
	Hemoglobin                  *float64 `json:"hemoglobin,omitempty"`
	IgALevel                    *float64 `gorm:"column:iga_level" json:"iga_level,omitempty"`

	// Medication
	Medications          *string `gorm:"type:text" json:"medications,omitempty"`
	MedicationCompliance *string `gorm:"size:50" json:"medication_compliance,omitempty"`

	Notes            *string    `gorm:"type:text" json:"notes,omitempty"`
	NextFollowupDate *time.Time `gorm:"type:date" json:"next_followup_date,omitempty"`
	RecordedBy       *uint      `gorm:"index" json:"recorded_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Patient  *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Recorder *User    `gorm:"foreignKey:RecordedBy;constraint:OnDelete:SET NULL" json:"recorder,omitempty"`
}

// TableName specifies the table name for FollowupRecord model
func (FollowupRecord) TableName() string {
	return "followup_records"
}
