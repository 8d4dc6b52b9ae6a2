package repomock

import (
	"context"

	domain "trainershift-backend/internal/domain/application"
)

type ApplicationRepo struct {
	CreateFn                      func(ctx context.Context, a *domain.ShiftApplication) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*domain.ShiftApplication, error)
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.ShiftApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.ShiftApplication, error)
	SaveFn                        func(ctx context.Context, a *domain.ShiftApplication) error
	GetActiveByTrainerAndShiftFn  func(ctx context.Context, trainerID, shiftID uint64) (*domain.ShiftApplication, error)
}

func (m *ApplicationRepo) Create(ctx context.Context, a *domain.ShiftApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*domain.ShiftApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *ApplicationRepo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.ShiftApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *ApplicationRepo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.ShiftApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *ApplicationRepo) Save(ctx context.Context, a *domain.ShiftApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *ApplicationRepo) GetActiveByTrainerAndShift(ctx context.Context, trainerID, shiftID uint64) (*domain.ShiftApplication, error) {
	if m.GetActiveByTrainerAndShiftFn != nil {
		return m.GetActiveByTrainerAndShiftFn(ctx, trainerID, shiftID)
	}
	return nil, domain.ErrNotFound
}
