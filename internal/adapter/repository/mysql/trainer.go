package mysql

import (
	"context"
	"errors"
	"time"

	trainerDomain "trainershift-backend/internal/domain/trainer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainerRepository struct{ db *gorm.DB }

func NewTrainerRepository(db *gorm.DB) *TrainerRepository { return &TrainerRepository{db: db} }

func (r *TrainerRepository) Create(ctx context.Context, t *trainerDomain.Trainer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrainerRepository) Save(ctx context.Context, t *trainerDomain.Trainer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TrainerRepository) GetByID(ctx context.Context, id uint64) (*trainerDomain.Trainer, error) {
	var out trainerDomain.Trainer
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, notFound(res.Error, trainerDomain.ErrNotFound)
}

func (r *TrainerRepository) GetByTrainerID(ctx context.Context, trainerID string) (*trainerDomain.Trainer, error) {
	var out trainerDomain.Trainer
	res := r.db.WithContext(ctx).Where("trainer_id = ?", trainerID).First(&out)
	return &out, notFound(res.Error, trainerDomain.ErrNotFound)
}

func (r *TrainerRepository) GetByTrainerIDForUpdate(ctx context.Context, trainerID string) (*trainerDomain.Trainer, error) {
	var out trainerDomain.Trainer
	res := forUpdate(r.db.WithContext(ctx)).
		Where("trainer_id = ?", trainerID).
		First(&out)
	return &out, notFound(res.Error, trainerDomain.ErrNotFound)
}

func (r *TrainerRepository) ListActive(ctx context.Context) ([]trainerDomain.Trainer, error) {
	var out []trainerDomain.Trainer
	res := r.db.WithContext(ctx).
		Where("status = ?", trainerDomain.StatusActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// UpdateBlankStatus is a single conditional write; the WHERE on the old
// value keeps concurrent sweeps idempotent.
func (r *TrainerRepository) UpdateBlankStatus(ctx context.Context, id uint64, to trainerDomain.BlankStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&trainerDomain.Trainer{}).
		Where("id = ? AND blank_status <> ?", id, to).
		Update("blank_status", to)
	return res.RowsAffected > 0, res.Error
}

func (r *TrainerRepository) StampLastShift(ctx context.Context, id uint64, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&trainerDomain.Trainer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_shift_date": day,
			"blank_status":    trainerDomain.BlankOK,
		}).Error
}

// notFound maps gorm's record-not-found onto the domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// forUpdate adds a row lock on dialects that support it; sqlite (tests)
// serializes writes anyway.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
