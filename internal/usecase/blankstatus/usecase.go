// Package blankstatus recomputes trainer eligibility from days elapsed
// since the last completed shift. The sweep is idempotent and safe to
// re-run concurrently: each row is written through a conditional update
// that only fires when the value actually changes.
package blankstatus

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trainershift-backend/internal/domain/blankrule"
	"trainershift-backend/internal/domain/trainer"
)

// maxStaleDays stands in for "never worked a shift": large enough that the
// highest configured threshold always matches.
const maxStaleDays = 1 << 20

type Usecase struct {
	trainers trainer.Repository
	rules    blankrule.Repository
	log      *zap.Logger
}

func NewUsecase(trainers trainer.Repository, rules blankrule.Repository, log *zap.Logger) *Usecase {
	return &Usecase{trainers: trainers, rules: rules, log: log}
}

// RunSweep recomputes blank status for every active trainer as of now and
// returns how many rows changed. Intended to be invoked by an external
// scheduler; re-running without intervening attendance events is a no-op.
func (u *Usecase) RunSweep(ctx context.Context) (int, error) {
	rules, err := u.rules.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	trainers, err := u.trainers.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	updated := 0
	for i := range trainers {
		tr := &trainers[i]
		target := Evaluate(rules, ElapsedDays(tr.LastShiftDate, now))
		changed, err := u.trainers.UpdateBlankStatus(ctx, tr.ID, target)
		if err != nil {
			u.log.Warn("blank status update failed",
				zap.String("trainer_id", tr.TrainerID), zap.Error(err))
			continue
		}
		if changed {
			updated++
		}
	}
	return updated, nil
}

// Evaluate picks the highest-threshold rule at or below the elapsed days;
// no match means ok. Rules arrive ordered ascending by threshold.
func Evaluate(rules []blankrule.BlankRule, elapsedDays int) trainer.BlankStatus {
	status := trainer.BlankOK
	for _, r := range rules {
		if r.ThresholdDays <= elapsedDays {
			status = r.Status
		}
	}
	return status
}

// ElapsedDays since the last shift; a trainer with no shift history is
// treated as maximally stale.
func ElapsedDays(lastShift *time.Time, now time.Time) int {
	if lastShift == nil {
		return maxStaleDays
	}
	return int(now.Sub(*lastShift).Hours() / 24)
}
