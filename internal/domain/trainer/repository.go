package trainer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Trainer) error
	GetByID(ctx context.Context, id uint64) (*Trainer, error)
	GetByTrainerID(ctx context.Context, trainerID string) (*Trainer, error)
	GetByTrainerIDForUpdate(ctx context.Context, trainerID string) (*Trainer, error)
	Save(ctx context.Context, t *Trainer) error
	ListActive(ctx context.Context) ([]Trainer, error)

	// UpdateBlankStatus writes the new status only when it differs from the
	// stored value (single conditional UPDATE); returns true when a row
	// actually changed. Safe to call from concurrent sweeps.
	UpdateBlankStatus(ctx context.Context, id uint64, to BlankStatus) (bool, error)

	// StampLastShift sets last_shift_date and resets blank_status to ok in
	// one write, used when a shift is completed.
	StampLastShift(ctx context.Context, id uint64, day time.Time) error
}
