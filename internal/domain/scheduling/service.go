package scheduling

import (
	"context"
	"errors"
	"strings"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
)

type Service struct {
	appointments AppointmentRepository
}

func NewService(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

// CreateAppointment books an appointment. Patients may only book for
// themselves.
func (s *Service) CreateAppointment(ctx context.Context, p *auth.Principal, in NewAppointment) (*Appointment, error) {
	if p == nil {
		return nil, apperr.Unauthenticated("authentication required")
	}
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	if in.PatientID == 0 || in.DoctorID == 0 || in.Date == "" || in.Time == "" {
		return nil, apperr.Validation("patient_id, doctor_id, date and time are required")
	}
	if p.Role == auth.RolePatient && in.PatientID != p.ID {
		return nil, apperr.Forbidden("patients can only book their own appointments")
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		Date:        date,
		Time:        in.Time,
		Description: in.Description,
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, referenceError(err)
	}
	return a, nil
}

// ListAppointments returns what the principal may see: everything for an
// admin, otherwise only the appointments they take part in.
func (s *Service) ListAppointments(ctx context.Context, p *auth.Principal) ([]*Appointment, error) {
	if p == nil {
		return nil, apperr.Unauthenticated("authentication required")
	}
	switch p.Role {
	case auth.RoleAdmin:
		return s.appointments.ListAll(ctx)
	case auth.RoleDoctor:
		return s.appointments.ListByDoctor(ctx, p.ID)
	case auth.RolePatient:
		return s.appointments.ListByPatient(ctx, p.ID)
	default:
		return []*Appointment{}, nil
	}
}

// UpdateAppointment applies a partial update. Doctors and patients only see
// appointments they take part in; for them a missing id and a foreign id are
// indistinguishable. Only admins may move an appointment to other users.
func (s *Service) UpdateAppointment(ctx context.Context, p *auth.Principal, id uint, upd AppointmentUpdate) (*Appointment, error) {
	if p == nil {
		return nil, apperr.Unauthenticated("authentication required")
	}

	scope := Scope{ID: id}
	switch p.Role {
	case auth.RoleAdmin:
	case auth.RoleDoctor:
		scope.DoctorID = p.ID
	case auth.RolePatient:
		scope.PatientID = p.ID
	default:
		return nil, apperr.Forbidden("role %q cannot update appointments", p.Role)
	}

	a, err := s.appointments.FindOne(ctx, scope)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, missing(p)
	}
	if err != nil {
		return nil, err
	}

	if p.Role != auth.RoleAdmin && upd.Reassigns(a) {
		return nil, apperr.Forbidden("only admins can change the patient or doctor of an appointment")
	}

	if err := upd.Apply(a); err != nil {
		return nil, err
	}
	if err := s.appointments.Save(ctx, a); err != nil {
		// deleted since it was read
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, missing(p)
		}
		return nil, referenceError(err)
	}
	return a, nil
}

func missing(p *auth.Principal) error {
	if p.Role == auth.RoleAdmin {
		return apperr.NotFound("appointment not found")
	}
	return apperr.NotFoundOrUnauthorized("appointment not found or unauthorized")
}

// DeleteAppointment removes an appointment by id. Deleting a missing id is
// not an error.
func (s *Service) DeleteAppointment(ctx context.Context, id uint) error {
	return s.appointments.Delete(ctx, id)
}

func referenceError(err error) error {
	if errors.Is(err, apperr.ErrReference) {
		return apperr.Reference("invalid patient or doctor")
	}
	return err
}
