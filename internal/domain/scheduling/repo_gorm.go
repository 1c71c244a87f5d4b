package scheduling

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/db"
)

type appointmentRepoGorm struct {
	db *gorm.DB
}

func NewAppointmentRepoGorm(gdb *gorm.DB) AppointmentRepository {
	return &appointmentRepoGorm{db: gdb}
}

func (r *appointmentRepoGorm) Create(ctx context.Context, a *Appointment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
	return db.TranslateError(err, "appointment")
}

func (r *appointmentRepoGorm) FindOne(ctx context.Context, scope Scope) (*Appointment, error) {
	q := r.db.WithContext(ctx).Where("id = ?", scope.ID)
	if scope.PatientID != 0 {
		q = q.Where("patient_id = ?", scope.PatientID)
	}
	if scope.DoctorID != 0 {
		q = q.Where("doctor_id = ?", scope.DoctorID)
	}
	var a Appointment
	if err := q.First(&a).Error; err != nil {
		return nil, db.TranslateError(err, "appointment")
	}
	return &a, nil
}

func (r *appointmentRepoGorm) ListAll(ctx context.Context) ([]*Appointment, error) {
	return r.list(r.db.WithContext(ctx).Preload("Patient").Preload("Doctor"))
}

func (r *appointmentRepoGorm) ListByDoctor(ctx context.Context, doctorID uint) ([]*Appointment, error) {
	return r.list(r.db.WithContext(ctx).Preload("Patient").Where("doctor_id = ?", doctorID))
}

func (r *appointmentRepoGorm) ListByPatient(ctx context.Context, patientID uint) ([]*Appointment, error) {
	return r.list(r.db.WithContext(ctx).Preload("Doctor").Where("patient_id = ?", patientID))
}

func (r *appointmentRepoGorm) list(q *gorm.DB) ([]*Appointment, error) {
	out := []*Appointment{}
	if err := q.Order("date, id").Find(&out).Error; err != nil {
		return nil, db.TranslateError(err, "appointment")
	}
	return out, nil
}

// Save updates every column of an existing appointment. Unlike gorm's Save it
// never inserts, so a row deleted since it was read stays deleted.
func (r *appointmentRepoGorm) Save(ctx context.Context, a *Appointment) error {
	res := r.db.WithContext(ctx).Model(a).Select("*").Omit(clause.Associations).Updates(a)
	if res.Error != nil {
		return db.TranslateError(res.Error, "appointment")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("appointment not found")
	}
	return nil
}

func (r *appointmentRepoGorm) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Appointment{}).Error
	return db.TranslateError(err, "appointment")
}
