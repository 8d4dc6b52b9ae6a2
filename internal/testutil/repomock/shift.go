package repomock

import (
	"context"

	domain "trainershift-backend/internal/domain/shift"
)

type ShiftRepo struct {
	CreateFn                func(ctx context.Context, s *domain.ShiftRequest) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.ShiftRequest, error)
	GetByShiftIDFn          func(ctx context.Context, shiftID string) (*domain.ShiftRequest, error)
	GetByShiftIDForUpdateFn func(ctx context.Context, shiftID string) (*domain.ShiftRequest, error)
	SaveFn                  func(ctx context.Context, s *domain.ShiftRequest) error
	TryReserveSlotFn        func(ctx context.Context, id uint64) error
	ReleaseSlotFn           func(ctx context.Context, id uint64) error
	ListOpenNonEmergencyFn  func(ctx context.Context) ([]domain.ShiftRequest, error)
	TryEscalateFn           func(ctx context.Context, id uint64, bonus float64) (bool, error)
}

func (m *ShiftRepo) Create(ctx context.Context, s *domain.ShiftRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *ShiftRepo) GetByID(ctx context.Context, id uint64) (*domain.ShiftRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *ShiftRepo) GetByShiftID(ctx context.Context, shiftID string) (*domain.ShiftRequest, error) {
	if m.GetByShiftIDFn != nil {
		return m.GetByShiftIDFn(ctx, shiftID)
	}
	return nil, domain.ErrNotFound
}

func (m *ShiftRepo) GetByShiftIDForUpdate(ctx context.Context, shiftID string) (*domain.ShiftRequest, error) {
	if m.GetByShiftIDForUpdateFn != nil {
		return m.GetByShiftIDForUpdateFn(ctx, shiftID)
	}
	return nil, domain.ErrNotFound
}

func (m *ShiftRepo) Save(ctx context.Context, s *domain.ShiftRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *ShiftRepo) TryReserveSlot(ctx context.Context, id uint64) error {
	if m.TryReserveSlotFn != nil {
		return m.TryReserveSlotFn(ctx, id)
	}
	return nil
}

func (m *ShiftRepo) ReleaseSlot(ctx context.Context, id uint64) error {
	if m.ReleaseSlotFn != nil {
		return m.ReleaseSlotFn(ctx, id)
	}
	return nil
}

func (m *ShiftRepo) ListOpenNonEmergency(ctx context.Context) ([]domain.ShiftRequest, error) {
	if m.ListOpenNonEmergencyFn != nil {
		return m.ListOpenNonEmergencyFn(ctx)
	}
	return nil, nil
}

func (m *ShiftRepo) TryEscalate(ctx context.Context, id uint64, bonus float64) (bool, error) {
	if m.TryEscalateFn != nil {
		return m.TryEscalateFn(ctx, id, bonus)
	}
	return false, nil
}
