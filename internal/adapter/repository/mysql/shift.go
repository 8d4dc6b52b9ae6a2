package mysql

import (
	"context"

	shiftDomain "trainershift-backend/internal/domain/shift"

	"gorm.io/gorm"
)

type ShiftRepository struct{ db *gorm.DB }

func NewShiftRepository(db *gorm.DB) *ShiftRepository { return &ShiftRepository{db: db} }

func (r *ShiftRepository) Create(ctx context.Context, s *shiftDomain.ShiftRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShiftRepository) Save(ctx context.Context, s *shiftDomain.ShiftRequest) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ShiftRepository) GetByID(ctx context.Context, id uint64) (*shiftDomain.ShiftRequest, error) {
	var out shiftDomain.ShiftRequest
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, notFound(res.Error, shiftDomain.ErrNotFound)
}

func (r *ShiftRepository) GetByShiftID(ctx context.Context, shiftID string) (*shiftDomain.ShiftRequest, error) {
	var out shiftDomain.ShiftRequest
	res := r.db.WithContext(ctx).Where("shift_id = ?", shiftID).First(&out)
	return &out, notFound(res.Error, shiftDomain.ErrNotFound)
}

func (r *ShiftRepository) GetByShiftIDForUpdate(ctx context.Context, shiftID string) (*shiftDomain.ShiftRequest, error) {
	var out shiftDomain.ShiftRequest
	res := forUpdate(r.db.WithContext(ctx)).
		Where("shift_id = ?", shiftID).
		First(&out)
	return &out, notFound(res.Error, shiftDomain.ErrNotFound)
}

// TryReserveSlot is the capacity guard: increment and bounds check happen
// in one UPDATE so racing callers can never overfill the shift.
func (r *ShiftRepository) TryReserveSlot(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Model(&shiftDomain.ShiftRequest{}).
		Where("id = ? AND status = ? AND filled_count < required_count", id, shiftDomain.StatusOpen).
		Update("filled_count", gorm.Expr("filled_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	// Condition failed; reload to report why.
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.Status != shiftDomain.StatusOpen {
		return shiftDomain.ErrNotOpen
	}
	return shiftDomain.ErrFull
}

// ReleaseSlot decrements with a floor of zero; callers hold at most one
// reservation each, so rows-affected 0 only means an already-empty shift.
func (r *ShiftRepository) ReleaseSlot(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Model(&shiftDomain.ShiftRequest{}).
		Where("id = ? AND filled_count > 0", id).
		Update("filled_count", gorm.Expr("filled_count - 1"))
	return res.Error
}

func (r *ShiftRepository) ListOpenNonEmergency(ctx context.Context) ([]shiftDomain.ShiftRequest, error) {
	var out []shiftDomain.ShiftRequest
	res := r.db.WithContext(ctx).
		Where("status = ? AND is_emergency = ?", shiftDomain.StatusOpen, false).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// TryEscalate is conditional on the shift still being open and normal, so
// overlapping sweeps escalate (and notify) exactly once.
func (r *ShiftRepository) TryEscalate(ctx context.Context, id uint64, bonus float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&shiftDomain.ShiftRequest{}).
		Where("id = ? AND status = ? AND is_emergency = ?", id, shiftDomain.StatusOpen, false).
		Updates(map[string]any{
			"is_emergency":           true,
			"emergency_bonus_amount": bonus,
		})
	return res.RowsAffected == 1, res.Error
}
