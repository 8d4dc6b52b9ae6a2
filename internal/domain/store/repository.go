package store

import "context"

type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id uint64) (*Store, error)
	GetByStoreID(ctx context.Context, storeID string) (*Store, error)
	Save(ctx context.Context, s *Store) error
}
