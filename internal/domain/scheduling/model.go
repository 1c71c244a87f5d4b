package scheduling

import (
	"strings"
	"time"

	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/platform/apperr"
)

// DateLayout is the accepted input format for appointment dates. Day and
// month may have one or two digits.
const DateLayout = "2-1-2006"

type Appointment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Date        time.Time      `gorm:"type:date;not null" json:"date"`
	Time        string         `gorm:"size:32;not null" json:"time"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	PatientID   uint           `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint           `gorm:"not null;index" json:"doctor_id"`
	Patient     *identity.User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      *identity.User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Appointment) TableName() string { return "appointments" }

type NewAppointment struct {
	PatientID   uint   `json:"patient_id"`
	DoctorID    uint   `json:"doctor_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// AppointmentUpdate is a partial update. Nil fields are left untouched.
type AppointmentUpdate struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Description *string `json:"description"`
	PatientID   *uint   `json:"patient_id"`
	DoctorID    *uint   `json:"doctor_id"`
}

// Reassigns reports whether u moves a to a different patient or doctor.
func (u AppointmentUpdate) Reassigns(a *Appointment) bool {
	return (u.PatientID != nil && *u.PatientID != a.PatientID) ||
		(u.DoctorID != nil && *u.DoctorID != a.DoctorID)
}

// Apply merges u into a. a is not modified when u is invalid.
func (u AppointmentUpdate) Apply(a *Appointment) error {
	next := *a
	if u.Date != nil {
		d, err := ParseDate(*u.Date)
		if err != nil {
			return err
		}
		next.Date = d
	}
	if u.Time != nil {
		t := strings.TrimSpace(*u.Time)
		if t == "" {
			return apperr.Validation("time cannot be empty")
		}
		next.Time = t
	}
	if u.Description != nil {
		next.Description = *u.Description
	}
	if u.PatientID != nil {
		if *u.PatientID == 0 {
			return apperr.Validation("patient_id cannot be empty")
		}
		if *u.PatientID != a.PatientID {
			next.Patient = nil
		}
		next.PatientID = *u.PatientID
	}
	if u.DoctorID != nil {
		if *u.DoctorID == 0 {
			return apperr.Validation("doctor_id cannot be empty")
		}
		if *u.DoctorID != a.DoctorID {
			next.Doctor = nil
		}
		next.DoctorID = *u.DoctorID
	}
	*a = next
	return nil
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperr.Validation("date must be in DD-MM-YYYY format")
	}
	return d, nil
}
