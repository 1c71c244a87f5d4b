package records

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/db"
)

const entity = "patient record"

type recordRepoGorm struct {
	db *gorm.DB
}

func NewRecordRepoGorm(gdb *gorm.DB) RecordRepository {
	return &recordRepoGorm{db: gdb}
}

func (r *recordRepoGorm) Create(ctx context.Context, rec *PatientRecord) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
	return db.TranslateError(err, entity)
}

func (r *recordRepoGorm) GetByUserID(ctx context.Context, userID uint) (*PatientRecord, error) {
	var rec PatientRecord
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		return nil, db.TranslateError(err, entity)
	}
	return &rec, nil
}

func (r *recordRepoGorm) GetByUserIDForDoctor(ctx context.Context, userID, doctorID uint) (*PatientRecord, error) {
	var rec PatientRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Where("user_id IN (?)", r.patientsOf(ctx, doctorID)).
		First(&rec).Error
	if err != nil {
		return nil, db.TranslateError(err, entity)
	}
	return &rec, nil
}

func (r *recordRepoGorm) ListAll(ctx context.Context) ([]*PatientRecord, error) {
	out := []*PatientRecord{}
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&out).Error; err != nil {
		return nil, db.TranslateError(err, entity)
	}
	return out, nil
}

func (r *recordRepoGorm) ListByDoctor(ctx context.Context, doctorID uint) ([]*PatientRecord, error) {
	out := []*PatientRecord{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?)", r.patientsOf(ctx, doctorID)).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, db.TranslateError(err, entity)
	}
	return out, nil
}

// patientsOf is a subquery selecting the patients the doctor has
// appointments with.
func (r *recordRepoGorm) patientsOf(ctx context.Context, doctorID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&scheduling.Appointment{}).
		Select("patient_id").
		Where("doctor_id = ?", doctorID)
}

// Save updates an existing record and never inserts.
func (r *recordRepoGorm) Save(ctx context.Context, rec *PatientRecord) error {
	res := r.db.WithContext(ctx).Model(rec).Select("*").Omit(clause.Associations).Updates(rec)
	if res.Error != nil {
		return db.TranslateError(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("patient record not found")
	}
	return nil
}

func (r *recordRepoGorm) DeleteByUserID(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&PatientRecord{}).Error
	return db.TranslateError(err, entity)
}
