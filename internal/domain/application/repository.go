package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *ShiftApplication) error
	GetByID(ctx context.Context, id uint64) (*ShiftApplication, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*ShiftApplication, error)
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*ShiftApplication, error)
	Save(ctx context.Context, a *ShiftApplication) error

	// GetActiveByTrainerAndShift returns the non-cancelled application for
	// the pair, if any (at most one exists by invariant).
	GetActiveByTrainerAndShift(ctx context.Context, trainerID, shiftID uint64) (*ShiftApplication, error)
}
