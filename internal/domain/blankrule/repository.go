package blankrule

import "context"

type Repository interface {
	// ListActive returns active rules ordered by threshold_days ascending.
	ListActive(ctx context.Context) ([]BlankRule, error)
}
