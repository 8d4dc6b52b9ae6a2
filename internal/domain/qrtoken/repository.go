package qrtoken

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *QrToken) error
	GetByToken(ctx context.Context, token string) (*QrToken, error)

	// InvalidateUnused marks every unused token of the given type for the
	// application as used without performing its action, keeping at most
	// one live token per (application, type).
	InvalidateUnused(ctx context.Context, applicationID uint64, typ Type, now time.Time) error

	// TryMarkUsed sets used_at iff it is still NULL, as one conditional
	// UPDATE; returns whether this caller won the race.
	TryMarkUsed(ctx context.Context, id uint64, now time.Time) (bool, error)
}
