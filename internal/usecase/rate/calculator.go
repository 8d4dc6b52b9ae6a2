package rate

import (
	"context"
	"time"

	"trainershift-backend/internal/domain/rateconfig"
	"trainershift-backend/internal/domain/shift"
	"trainershift-backend/internal/domain/store"
	"trainershift-backend/internal/domain/trainer"
	"trainershift-backend/internal/domain/uow"
)

// attendanceWindow is the trailing window for the rolling attendance
// bonus, evaluated at call time (not at shift date), inclusive.
const attendanceWindow = 30 * 24 * time.Hour

// Calculator resolves the public compute contract from identifiers. It is
// read-only; the caller persists the resulting breakdown.
type Calculator struct{ r uow.Repos }

func NewCalculator(r uow.Repos) *Calculator { return &Calculator{r: r} }

func (c *Calculator) Compute(ctx context.Context, trainerID, shiftID string) (*Breakdown, error) {
	tr, err := c.r.Trainers.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, trainer.ErrNotFound
	}
	sh, err := c.r.Shifts.GetByShiftID(ctx, shiftID)
	if err != nil {
		return nil, shift.ErrNotFound
	}
	st, err := c.r.Stores.GetByID(ctx, sh.StoreID)
	if err != nil {
		return nil, store.ErrNotFound
	}
	return ComputeFor(ctx, c.r, tr, sh, st)
}

// ComputeFor computes the breakdown for already-loaded rows. It is also
// called inside application transactions so the freeze happens under the
// same locks as the reservation.
func ComputeFor(ctx context.Context, r uow.Repos, tr *trainer.Trainer, sh *shift.ShiftRequest, st *store.Store) (*Breakdown, error) {
	cfgs, err := r.RateConfigs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	cfg := pickTier(cfgs, tr.TenureYears)
	if cfg == nil {
		return nil, rateconfig.ErrNoRateConfig
	}

	bd := &Breakdown{
		BaseRate:    cfg.BaseRate,
		TenureYears: tr.TenureYears,
	}

	since := time.Now().UTC().Add(-attendanceWindow)
	count, err := r.Attendances.CountCompletedSince(ctx, tr.ID, since)
	if err != nil {
		return nil, err
	}
	bd.AttendanceCount = int(count)
	if cfg.AttendanceBonusThreshold > 0 && bd.AttendanceCount >= cfg.AttendanceBonusThreshold {
		bd.AttendanceBonus = cfg.AttendanceBonusAmount
	}

	if sh.IsEmergency {
		bd.EmergencyBonus = sh.EmergencyBonusAmount
	}

	bd.Total = bd.BaseRate + bd.AttendanceBonus + bd.EmergencyBonus

	ceiling, err := effectiveCeiling(ctx, r, st)
	if err != nil {
		return nil, err
	}
	// Clamp down only; a total below the ceiling is never raised.
	if ceiling != nil && bd.Total > *ceiling {
		bd.Total = *ceiling
		bd.CeilingApplied = true
	}
	return bd, nil
}

// pickTier selects the most specific band the tenure qualifies for:
// largest tenure_min_years, then latest effective_from, then highest id.
// The tie-break makes overlapping (mis-curated) bands deterministic.
func pickTier(cfgs []rateconfig.RateConfig, tenure float64) *rateconfig.RateConfig {
	var best *rateconfig.RateConfig
	for i := range cfgs {
		c := &cfgs[i]
		if !c.Matches(tenure) {
			continue
		}
		if best == nil ||
			c.TenureMinYears > best.TenureMinYears ||
			(c.TenureMinYears == best.TenureMinYears && c.EffectiveFrom.After(best.EffectiveFrom)) ||
			(c.TenureMinYears == best.TenureMinYears && c.EffectiveFrom.Equal(best.EffectiveFrom) && c.ID > best.ID) {
			best = c
		}
	}
	return best
}

// effectiveCeiling prefers the store override, then the global ceiling;
// nil means no ceiling is configured.
func effectiveCeiling(ctx context.Context, r uow.Repos, st *store.Store) (*float64, error) {
	if st != nil && st.MaxHourlyRate != nil {
		return st.MaxHourlyRate, nil
	}
	global, err := r.RateConfigs.GlobalCeiling(ctx)
	if err != nil {
		return nil, err
	}
	if global == nil {
		return nil, nil
	}
	return &global.MaxHourlyRate, nil
}
