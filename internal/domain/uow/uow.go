package uow

import (
	"context"

	"trainershift-backend/internal/domain/application"
	"trainershift-backend/internal/domain/attendance"
	"trainershift-backend/internal/domain/blankrule"
	"trainershift-backend/internal/domain/qrtoken"
	"trainershift-backend/internal/domain/rateconfig"
	"trainershift-backend/internal/domain/shift"
	"trainershift-backend/internal/domain/store"
	"trainershift-backend/internal/domain/trainer"
)

type Repos struct {
	Trainers     trainer.Repository
	Stores       store.Repository
	Shifts       shift.Repository
	Applications application.Repository
	Attendances  attendance.Repository
	QrTokens     qrtoken.Repository
	RateConfigs  rateconfig.Repository
	BlankRules   blankrule.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the shift row first, then pass it in
	WithinShiftTx(ctx context.Context, shiftID string, fn func(r Repos, s *shift.ShiftRequest) error) error
}
