package mysql

import (
	"context"
	"time"

	qrDomain "trainershift-backend/internal/domain/qrtoken"

	"gorm.io/gorm"
)

type QrTokenRepository struct{ db *gorm.DB }

func NewQrTokenRepository(db *gorm.DB) *QrTokenRepository { return &QrTokenRepository{db: db} }

func (r *QrTokenRepository) Create(ctx context.Context, t *qrDomain.QrToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *QrTokenRepository) GetByToken(ctx context.Context, token string) (*qrDomain.QrToken, error) {
	var out qrDomain.QrToken
	res := r.db.WithContext(ctx).Where("token = ?", token).First(&out)
	return &out, notFound(res.Error, qrDomain.ErrInvalidToken)
}

func (r *QrTokenRepository) InvalidateUnused(ctx context.Context, applicationID uint64, typ qrDomain.Type, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&qrDomain.QrToken{}).
		Where("application_id = ? AND type = ? AND used_at IS NULL", applicationID, typ).
		Update("used_at", now).Error
}

// TryMarkUsed: the used_at IS NULL predicate makes concurrent redemptions
// of one token resolve to a single winner.
func (r *QrTokenRepository) TryMarkUsed(ctx context.Context, id uint64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&qrDomain.QrToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", now)
	return res.RowsAffected == 1, res.Error
}
