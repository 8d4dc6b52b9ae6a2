package repomock

import (
	"context"

	"trainershift-backend/internal/domain/blankrule"
	"trainershift-backend/internal/domain/rateconfig"
)

type RateConfigRepo struct {
	ListActiveFn    func(ctx context.Context) ([]rateconfig.RateConfig, error)
	GlobalCeilingFn func(ctx context.Context) (*rateconfig.CostCeiling, error)
}

func (m *RateConfigRepo) ListActive(ctx context.Context) ([]rateconfig.RateConfig, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *RateConfigRepo) GlobalCeiling(ctx context.Context) (*rateconfig.CostCeiling, error) {
	if m.GlobalCeilingFn != nil {
		return m.GlobalCeilingFn(ctx)
	}
	return nil, nil
}

type BlankRuleRepo struct {
	ListActiveFn func(ctx context.Context) ([]blankrule.BlankRule, error)
}

func (m *BlankRuleRepo) ListActive(ctx context.Context) ([]blankrule.BlankRule, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
