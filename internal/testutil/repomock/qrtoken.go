package repomock

import (
	"context"
	"time"

	domain "trainershift-backend/internal/domain/qrtoken"
)

type QrTokenRepo struct {
	CreateFn           func(ctx context.Context, t *domain.QrToken) error
	GetByTokenFn       func(ctx context.Context, token string) (*domain.QrToken, error)
	InvalidateUnusedFn func(ctx context.Context, applicationID uint64, typ domain.Type, now time.Time) error
	TryMarkUsedFn      func(ctx context.Context, id uint64, now time.Time) (bool, error)
}

func (m *QrTokenRepo) Create(ctx context.Context, t *domain.QrToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *QrTokenRepo) GetByToken(ctx context.Context, token string) (*domain.QrToken, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	return nil, domain.ErrInvalidToken
}

func (m *QrTokenRepo) InvalidateUnused(ctx context.Context, applicationID uint64, typ domain.Type, now time.Time) error {
	if m.InvalidateUnusedFn != nil {
		return m.InvalidateUnusedFn(ctx, applicationID, typ, now)
	}
	return nil
}

func (m *QrTokenRepo) TryMarkUsed(ctx context.Context, id uint64, now time.Time) (bool, error) {
	if m.TryMarkUsedFn != nil {
		return m.TryMarkUsedFn(ctx, id, now)
	}
	return true, nil
}
