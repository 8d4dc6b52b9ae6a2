package uowmock

import (
	"context"
	"errors"

	"trainershift-backend/internal/domain/shift"
	"trainershift-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinShiftTxFn func(ctx context.Context, shiftID string, fn func(r uow.Repos, s *shift.ShiftRequest) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires both methods to run the closure directly against the
// given repo set, with no transaction semantics. WithinShiftTx resolves
// the shift through r.Shifts.GetByShiftIDForUpdate like the real thing.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinShiftTxFn: func(ctx context.Context, shiftID string, fn func(r uow.Repos, s *shift.ShiftRequest) error) error {
			s, err := r.Shifts.GetByShiftIDForUpdate(ctx, shiftID)
			if err != nil {
				return err
			}
			return fn(r, s)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinShiftTx(ctx context.Context, shiftID string, fn func(r uow.Repos, s *shift.ShiftRequest) error) error {
	if m.WithinShiftTxFn != nil {
		return m.WithinShiftTxFn(ctx, shiftID, fn)
	}
	return errUnimplemented
}
