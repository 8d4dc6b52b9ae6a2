package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByRecordID(ctx context.Context, recordID string) (*Record, error)
	GetByRecordIDForUpdate(ctx context.Context, recordID string) (*Record, error)
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Record, error)
	Save(ctx context.Context, rec *Record) error

	// DeleteScheduled removes the record only while it is still scheduled;
	// a record that has clocked in is never deleted (ErrInvalidState).
	DeleteScheduled(ctx context.Context, id uint64) error

	// CountCompletedSince counts clocked_out/verified records for the
	// trainer with shift_date on or after the given day. Feeds the rolling
	// attendance bonus.
	CountCompletedSince(ctx context.Context, trainerID uint64, since time.Time) (int64, error)
}
