package mysql

import (
	"context"
	"time"

	attDomain "trainershift-backend/internal/domain/attendance"

	"gorm.io/gorm"
)

type AttendanceRepository struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *attDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *AttendanceRepository) Save(ctx context.Context, rec *attDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *AttendanceRepository) GetByRecordID(ctx context.Context, recordID string) (*attDomain.Record, error) {
	var out attDomain.Record
	res := r.db.WithContext(ctx).Where("record_id = ?", recordID).First(&out)
	return &out, notFound(res.Error, attDomain.ErrNotFound)
}

func (r *AttendanceRepository) GetByRecordIDForUpdate(ctx context.Context, recordID string) (*attDomain.Record, error) {
	var out attDomain.Record
	res := forUpdate(r.db.WithContext(ctx)).
		Where("record_id = ?", recordID).
		First(&out)
	return &out, notFound(res.Error, attDomain.ErrNotFound)
}

func (r *AttendanceRepository) GetByApplicationID(ctx context.Context, applicationID uint64) (*attDomain.Record, error) {
	var out attDomain.Record
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, notFound(res.Error, attDomain.ErrNotFound)
}

// DeleteScheduled guards the delete on status so a record that clocked in
// can never disappear.
func (r *AttendanceRepository) DeleteScheduled(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, attDomain.StatusScheduled).
		Delete(&attDomain.Record{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return attDomain.ErrInvalidState
	}
	return nil
}

func (r *AttendanceRepository) CountCompletedSince(ctx context.Context, trainerID uint64, since time.Time) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&attDomain.Record{}).
		Where("trainer_id = ? AND status IN ? AND shift_date >= ?",
			trainerID,
			[]attDomain.Status{attDomain.StatusClockedOut, attDomain.StatusVerified},
			since).
		Count(&n)
	return n, res.Error
}
