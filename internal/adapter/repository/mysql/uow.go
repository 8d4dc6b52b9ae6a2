package mysql

import (
	"context"

	"trainershift-backend/internal/domain/shift"
	"trainershift-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Trainers:     &TrainerRepository{db: tx},
		Stores:       &StoreRepository{db: tx},
		Shifts:       &ShiftRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
		Attendances:  &AttendanceRepository{db: tx},
		QrTokens:     &QrTokenRepository{db: tx},
		RateConfigs:  &RateConfigRepository{db: tx},
		BlankRules:   &BlankRuleRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinShiftTx(ctx context.Context, shiftID string, fn func(r uow.Repos, s *shift.ShiftRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the shift row up-front to prevent races
		s, err := r.Shifts.GetByShiftIDForUpdate(ctx, shiftID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
