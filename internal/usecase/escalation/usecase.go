// Package escalation promotes stale, under-filled open shifts to
// emergency. Escalation is irreversible here and never touches rates
// frozen on existing applications; only future submissions see the bonus.
package escalation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trainershift-backend/internal/domain/shift"
	"trainershift-backend/internal/notify"
)

const (
	// escalateAfter is the minimum shift age before escalation.
	escalateAfter = 24 * time.Hour
	// escalateBelowFillRate: shifts at or above half staffing stay normal.
	escalateBelowFillRate = 0.5
)

type Usecase struct {
	shifts       shift.Repository
	notifier     notify.Notifier
	log          *zap.Logger
	defaultBonus float64
}

func NewUsecase(shifts shift.Repository, n notify.Notifier, log *zap.Logger, defaultBonus float64) *Usecase {
	return &Usecase{shifts: shifts, notifier: n, log: log, defaultBonus: defaultBonus}
}

// RunSweep scans open non-emergency shifts as of its start time and
// escalates each eligible one through a conditional update, so concurrent
// sweeps never double-escalate or double-notify. Returns the number of
// shifts this run escalated.
func (u *Usecase) RunSweep(ctx context.Context) (int, error) {
	candidates, err := u.shifts.ListOpenNonEmergency(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	escalated := 0
	for i := range candidates {
		s := &candidates[i]
		if now.Sub(s.CreatedAt) < escalateAfter {
			continue
		}
		// required_count == 0 reads as fully staffed; never escalate.
		if s.FillRate() >= escalateBelowFillRate {
			continue
		}

		won, err := u.shifts.TryEscalate(ctx, s.ID, u.defaultBonus)
		if err != nil {
			u.log.Warn("shift escalation failed",
				zap.String("shift_id", s.ShiftID), zap.Error(err))
			continue
		}
		if !won {
			continue
		}
		escalated++

		if err := u.notifier.Notify(ctx, notify.RecipientAdmin, notify.CategoryShiftEscalated, map[string]any{
			"shift_id":               s.ShiftID,
			"required_count":         s.RequiredCount,
			"filled_count":           s.FilledCount,
			"emergency_bonus_amount": u.defaultBonus,
		}); err != nil {
			u.log.Warn("escalation notification failed",
				zap.String("shift_id", s.ShiftID), zap.Error(err))
		}
	}
	return escalated, nil
}
