package records

import (
	"time"

	"github.com/clinic/clinic/internal/domain/identity"
)

// PatientRecord is the medical record of one user. There is at most one per
// user.
type PatientRecord struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User               *identity.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MedicalHistory     string         `gorm:"type:text" json:"medical_history"`
	Allergies          string         `gorm:"type:text" json:"allergies"`
	CurrentMedications string         `gorm:"type:text" json:"current_medications"`
	ChronicDiseases    string         `gorm:"type:text" json:"chronic_diseases"`
	BloodGroup         string         `gorm:"size:8" json:"blood_group"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (PatientRecord) TableName() string { return "patient_records" }

// PatientRecordUpdate carries the medical fields of a record. Nil fields are
// left untouched.
type PatientRecordUpdate struct {
	MedicalHistory     *string `json:"medical_history"`
	Allergies          *string `json:"allergies"`
	CurrentMedications *string `json:"current_medications"`
	ChronicDiseases    *string `json:"chronic_diseases"`
	BloodGroup         *string `json:"blood_group"`
	Notes              *string `json:"notes"`
}

func (u PatientRecordUpdate) Apply(r *PatientRecord) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.MedicalHistory, u.MedicalHistory)
	set(&r.Allergies, u.Allergies)
	set(&r.CurrentMedications, u.CurrentMedications)
	set(&r.ChronicDiseases, u.ChronicDiseases)
	set(&r.BloodGroup, u.BloodGroup)
	set(&r.Notes, u.Notes)
}

type NewPatientRecord struct {
	PatientID uint `json:"patient_id"`
	PatientRecordUpdate
}
