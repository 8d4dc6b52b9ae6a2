package repomock

import (
	"context"

	domain "trainershift-backend/internal/domain/store"
)

type StoreRepo struct {
	CreateFn       func(ctx context.Context, s *domain.Store) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Store, error)
	GetByStoreIDFn func(ctx context.Context, storeID string) (*domain.Store, error)
	SaveFn         func(ctx context.Context, s *domain.Store) error
}

func (m *StoreRepo) Create(ctx context.Context, s *domain.Store) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *StoreRepo) GetByID(ctx context.Context, id uint64) (*domain.Store, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *StoreRepo) GetByStoreID(ctx context.Context, storeID string) (*domain.Store, error) {
	if m.GetByStoreIDFn != nil {
		return m.GetByStoreIDFn(ctx, storeID)
	}
	return nil, domain.ErrNotFound
}

func (m *StoreRepo) Save(ctx context.Context, s *domain.Store) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
