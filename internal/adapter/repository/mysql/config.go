package mysql

import (
	"context"
	"errors"

	"trainershift-backend/internal/domain/blankrule"
	"trainershift-backend/internal/domain/rateconfig"

	"gorm.io/gorm"
)

// RateConfigRepository also serves the global cost ceiling; both tables
// are read-only to this service (CRUD lives elsewhere).
type RateConfigRepository struct{ db *gorm.DB }

func NewRateConfigRepository(db *gorm.DB) *RateConfigRepository {
	return &RateConfigRepository{db: db}
}

func (r *RateConfigRepository) ListActive(ctx context.Context) ([]rateconfig.RateConfig, error) {
	var out []rateconfig.RateConfig
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("tenure_min_years ASC, effective_from ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RateConfigRepository) GlobalCeiling(ctx context.Context) (*rateconfig.CostCeiling, error) {
	var out rateconfig.CostCeiling
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

type BlankRuleRepository struct{ db *gorm.DB }

func NewBlankRuleRepository(db *gorm.DB) *BlankRuleRepository {
	return &BlankRuleRepository{db: db}
}

func (r *BlankRuleRepository) ListActive(ctx context.Context) ([]blankrule.BlankRule, error) {
	var out []blankrule.BlankRule
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("threshold_days ASC").
		Find(&out)
	return out, res.Error
}
