package records

import (
	"context"
)

type RecordRepository interface {
	Create(ctx context.Context, r *PatientRecord) error
	GetByUserID(ctx context.Context, userID uint) (*PatientRecord, error)
	// GetByUserIDForDoctor only finds the record when the doctor has at
	// least one appointment with the patient.
	GetByUserIDForDoctor(ctx context.Context, userID, doctorID uint) (*PatientRecord, error)
	ListAll(ctx context.Context) ([]*PatientRecord, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]*PatientRecord, error)
	Save(ctx context.Context, r *PatientRecord) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// UserLookup reports whether a user account exists.
type UserLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}
