package scheduling

import (
	"context"
)

// Scope narrows a single-appointment lookup. Zero fields are not applied.
type Scope struct {
	ID        uint
	PatientID uint
	DoctorID  uint
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	FindOne(ctx context.Context, scope Scope) (*Appointment, error)
	ListAll(ctx context.Context) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*Appointment, error)
	Save(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uint) error
}
