package mysql

import (
	"context"

	appDomain "trainershift-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.ShiftApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.ShiftApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.ShiftApplication, error) {
	var out appDomain.ShiftApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, notFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.ShiftApplication, error) {
	var out appDomain.ShiftApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, notFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.ShiftApplication, error) {
	var out appDomain.ShiftApplication
	res := forUpdate(r.db.WithContext(ctx)).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, notFound(res.Error, appDomain.ErrNotFound)
}

func (r *ApplicationRepository) GetActiveByTrainerAndShift(ctx context.Context, trainerID, shiftID uint64) (*appDomain.ShiftApplication, error) {
	var out appDomain.ShiftApplication
	res := r.db.WithContext(ctx).
		Where("trainer_id = ? AND shift_id = ? AND status <> ?", trainerID, shiftID, appDomain.StatusCancelled).
		Order("id DESC").
		First(&out)
	return &out, notFound(res.Error, appDomain.ErrNotFound)
}
