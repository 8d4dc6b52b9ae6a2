// Package repomock holds function-backed mocks that satisfy the domain
// repository interfaces. Only the methods a test fills in are live; the
// rest fall back to a neutral default.
package repomock

import (
	"context"
	"time"

	domain "trainershift-backend/internal/domain/trainer"
)

type TrainerRepo struct {
	CreateFn                  func(ctx context.Context, t *domain.Trainer) error
	GetByIDFn                 func(ctx context.Context, id uint64) (*domain.Trainer, error)
	GetByTrainerIDFn          func(ctx context.Context, trainerID string) (*domain.Trainer, error)
	GetByTrainerIDForUpdateFn func(ctx context.Context, trainerID string) (*domain.Trainer, error)
	SaveFn                    func(ctx context.Context, t *domain.Trainer) error
	ListActiveFn              func(ctx context.Context) ([]domain.Trainer, error)
	UpdateBlankStatusFn       func(ctx context.Context, id uint64, to domain.BlankStatus) (bool, error)
	StampLastShiftFn          func(ctx context.Context, id uint64, day time.Time) error
}

func (m *TrainerRepo) Create(ctx context.Context, t *domain.Trainer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *TrainerRepo) GetByID(ctx context.Context, id uint64) (*domain.Trainer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *TrainerRepo) GetByTrainerID(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	if m.GetByTrainerIDFn != nil {
		return m.GetByTrainerIDFn(ctx, trainerID)
	}
	return nil, domain.ErrNotFound
}

func (m *TrainerRepo) GetByTrainerIDForUpdate(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	if m.GetByTrainerIDForUpdateFn != nil {
		return m.GetByTrainerIDForUpdateFn(ctx, trainerID)
	}
	return nil, domain.ErrNotFound
}

func (m *TrainerRepo) Save(ctx context.Context, t *domain.Trainer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *TrainerRepo) ListActive(ctx context.Context) ([]domain.Trainer, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *TrainerRepo) UpdateBlankStatus(ctx context.Context, id uint64, to domain.BlankStatus) (bool, error) {
	if m.UpdateBlankStatusFn != nil {
		return m.UpdateBlankStatusFn(ctx, id, to)
	}
	return false, nil
}

func (m *TrainerRepo) StampLastShift(ctx context.Context, id uint64, day time.Time) error {
	if m.StampLastShiftFn != nil {
		return m.StampLastShiftFn(ctx, id, day)
	}
	return nil
}
