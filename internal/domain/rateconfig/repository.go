package rateconfig

import "context"

type Repository interface {
	// ListActive returns active configs ordered by tenure_min_years,
	// effective_from, id ascending.
	ListActive(ctx context.Context) ([]RateConfig, error)

	// GlobalCeiling returns the active global ceiling, or nil when none is
	// configured.
	GlobalCeiling(ctx context.Context) (*CostCeiling, error)
}
