package shift

import "context"

type Repository interface {
	Create(ctx context.Context, s *ShiftRequest) error
	GetByID(ctx context.Context, id uint64) (*ShiftRequest, error)
	GetByShiftID(ctx context.Context, shiftID string) (*ShiftRequest, error)
	GetByShiftIDForUpdate(ctx context.Context, shiftID string) (*ShiftRequest, error)
	Save(ctx context.Context, s *ShiftRequest) error

	// TryReserveSlot increments filled_count iff the shift is open and a
	// slot remains, as one conditional UPDATE (never read-then-write).
	// Returns ErrFull or ErrNotOpen when the condition does not hold.
	TryReserveSlot(ctx context.Context, id uint64) error

	// ReleaseSlot decrements filled_count, floored at zero. Callers invoke
	// it exactly once per held reservation.
	ReleaseSlot(ctx context.Context, id uint64) error

	// ListOpenNonEmergency returns the escalation sweep's candidate set.
	ListOpenNonEmergency(ctx context.Context) ([]ShiftRequest, error)

	// TryEscalate flips is_emergency and sets the bonus iff the shift is
	// still open and not yet escalated; returns whether this call won.
	TryEscalate(ctx context.Context, id uint64, bonus float64) (bool, error)
}
