package records

import (
	"context"
	"errors"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
)

type Service struct {
	records RecordRepository
	users   UserLookup
}

func NewService(records RecordRepository, users UserLookup) *Service {
	return &Service{records: records, users: users}
}

// CreateRecord opens the record of an existing user.
func (s *Service) CreateRecord(ctx context.Context, in NewPatientRecord) (*PatientRecord, error) {
	if in.PatientID == 0 {
		return nil, apperr.Validation("patient_id is required")
	}

	ok, err := s.users.Exists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("patient doesn't exist")
	}

	_, err = s.records.GetByUserID(ctx, in.PatientID)
	switch {
	case err == nil:
		return nil, apperr.Conflict("patient record already exists")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	rec := &PatientRecord{UserID: in.PatientID}
	in.Apply(rec)
	if err := s.records.Create(ctx, rec); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return nil, apperr.Conflict("patient record already exists")
		case errors.Is(err, apperr.ErrReference):
			return nil, apperr.NotFound("patient doesn't exist")
		}
		return nil, err
	}
	return rec, nil
}

// ListRecords returns the records the principal may read. A doctor sees the
// records of patients they have appointments with; a patient sees only
// their own.
func (s *Service) ListRecords(ctx context.Context, p *auth.Principal) ([]*PatientRecord, error) {
	if p == nil {
		return nil, apperr.Unauthenticated("authentication required")
	}
	switch p.Role {
	case auth.RoleAdmin:
		return s.records.ListAll(ctx)
	case auth.RoleDoctor:
		return s.records.ListByDoctor(ctx, p.ID)
	case auth.RolePatient:
		rec, err := s.records.GetByUserID(ctx, p.ID)
		if errors.Is(err, apperr.ErrNotFound) {
			return []*PatientRecord{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []*PatientRecord{rec}, nil
	default:
		return []*PatientRecord{}, nil
	}
}

// UpdateRecord merges upd into the record of patientID. Doctors may only
// update patients they have an appointment with.
func (s *Service) UpdateRecord(ctx context.Context, p *auth.Principal, patientID uint, upd PatientRecordUpdate) (*PatientRecord, error) {
	if p == nil {
		return nil, apperr.Unauthenticated("authentication required")
	}

	var (
		rec *PatientRecord
		err error
	)
	if p.Role == auth.RoleDoctor {
		rec, err = s.records.GetByUserIDForDoctor(ctx, patientID, p.ID)
	} else {
		rec, err = s.records.GetByUserID(ctx, patientID)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, errRecordUnavailable()
	}
	if err != nil {
		return nil, err
	}

	upd.Apply(rec)
	if err := s.records.Save(ctx, rec); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, errRecordUnavailable()
		}
		return nil, err
	}
	return rec, nil
}

// DeleteRecord removes the record of patientID, if any.
func (s *Service) DeleteRecord(ctx context.Context, patientID uint) error {
	return s.records.DeleteByUserID(ctx, patientID)
}

func errRecordUnavailable() error {
	return apperr.NotFoundOrUnauthorized("patient record not found or unauthorized")
}
