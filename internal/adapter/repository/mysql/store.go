package mysql

import (
	"context"

	storeDomain "trainershift-backend/internal/domain/store"

	"gorm.io/gorm"
)

type StoreRepository struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) *StoreRepository { return &StoreRepository{db: db} }

func (r *StoreRepository) Create(ctx context.Context, s *storeDomain.Store) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StoreRepository) Save(ctx context.Context, s *storeDomain.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StoreRepository) GetByID(ctx context.Context, id uint64) (*storeDomain.Store, error) {
	var out storeDomain.Store
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, notFound(res.Error, storeDomain.ErrNotFound)
}

func (r *StoreRepository) GetByStoreID(ctx context.Context, storeID string) (*storeDomain.Store, error) {
	var out storeDomain.Store
	res := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&out)
	return &out, notFound(res.Error, storeDomain.ErrNotFound)
}
