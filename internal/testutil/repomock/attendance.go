package repomock

import (
	"context"
	"time"

	domain "trainershift-backend/internal/domain/attendance"
)

type AttendanceRepo struct {
	CreateFn                 func(ctx context.Context, rec *domain.Record) error
	GetByRecordIDFn          func(ctx context.Context, recordID string) (*domain.Record, error)
	GetByRecordIDForUpdateFn func(ctx context.Context, recordID string) (*domain.Record, error)
	GetByApplicationIDFn     func(ctx context.Context, applicationID uint64) (*domain.Record, error)
	SaveFn                   func(ctx context.Context, rec *domain.Record) error
	DeleteScheduledFn        func(ctx context.Context, id uint64) error
	CountCompletedSinceFn    func(ctx context.Context, trainerID uint64, since time.Time) (int64, error)
}

func (m *AttendanceRepo) Create(ctx context.Context, rec *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *AttendanceRepo) GetByRecordID(ctx context.Context, recordID string) (*domain.Record, error) {
	if m.GetByRecordIDFn != nil {
		return m.GetByRecordIDFn(ctx, recordID)
	}
	return nil, domain.ErrNotFound
}

func (m *AttendanceRepo) GetByRecordIDForUpdate(ctx context.Context, recordID string) (*domain.Record, error) {
	if m.GetByRecordIDForUpdateFn != nil {
		return m.GetByRecordIDForUpdateFn(ctx, recordID)
	}
	return nil, domain.ErrNotFound
}

func (m *AttendanceRepo) GetByApplicationID(ctx context.Context, applicationID uint64) (*domain.Record, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *AttendanceRepo) Save(ctx context.Context, rec *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, rec)
	}
	return nil
}

func (m *AttendanceRepo) DeleteScheduled(ctx context.Context, id uint64) error {
	if m.DeleteScheduledFn != nil {
		return m.DeleteScheduledFn(ctx, id)
	}
	return nil
}

func (m *AttendanceRepo) CountCompletedSince(ctx context.Context, trainerID uint64, since time.Time) (int64, error) {
	if m.CountCompletedSinceFn != nil {
		return m.CountCompletedSinceFn(ctx, trainerID, since)
	}
	return 0, nil
}
