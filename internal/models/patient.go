package models

import "time"

// Patient represents the patients table. PatientID is the generated
// "IGA-NNNNNN" code and never changes after creation.
type Patient struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	PatientID       string     `gorm:"uniqueIndex;not null;size:50" json:"patient_id"`
	Name            string     `gorm:"not null;size:100" json:"name"`
	Gender          string     `gorm:"not null;size:10" json:"gender"`
	BirthDate       *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Age             *int       `json:"age,omitempty"`
	IDCard          *string    `gorm:"size:18" json:"id_card,omitempty"`
	Phone           *string    `gorm:"size:20" json:"phone,omitempty"`
	Address         *string    `gorm:"type:text" json:"address,omitempty"`
	Diagnosis       *string    `gorm:"type:text" json:"diagnosis,omitempty"`
	DiagnosisDate   *time.Time `gorm:"type:date" json:"diagnosis_date,omitempty"`
	InitialSymptoms *string    `gorm:"type:text" json:"initial_symptoms,omitempty"`
	Comorbidities   *string    `gorm:"type:text" json:"comorbidities,omitempty"`
	FamilyHistory   *string    `gorm:"type:text" json:"family_history,omitempty"`
	CreatedBy       *uint      `gorm:"index" json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships
	Creator         *User            `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	FollowupRecords []FollowupRecord `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"followup_records,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
