package service

import (
	"context"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/store"
)

// DashboardService aggregates per-user pipeline numbers for the landing
// view: entity counts, attempted outreach, and realized revenue.
type DashboardService struct {
	Store store.Store
}

type DashboardCounts struct {
	Prospects             int
	Deals                 int
	InteractionsAttempted int
	Revenue               float64
}

// Counts gathers the headline numbers for a user. Revenue only sums
// completed payments.
func (s *DashboardService) Counts(ctx context.Context, userID string) (DashboardCounts, error) {
	var out DashboardCounts
	var err error

	if out.Prospects, err = s.Store.Prospects().CountProspects(ctx, userID); err != nil {
		return DashboardCounts{}, err
	}
	if out.Deals, err = s.Store.Deals().CountDeals(ctx, userID); err != nil {
		return DashboardCounts{}, err
	}
	if out.InteractionsAttempted, err = s.Store.Interactions().CountAttempted(ctx, userID); err != nil {
		return DashboardCounts{}, err
	}
	if out.Revenue, err = s.Store.Payments().CompletedTotal(ctx, userID); err != nil {
		return DashboardCounts{}, err
	}
	return out, nil
}

// RecentProspects returns the user's newest prospects, up to limit.
func (s *DashboardService) RecentProspects(ctx context.Context, userID string, limit int) ([]domain.Prospect, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.Store.Prospects().ListRecentProspects(ctx, userID, limit)
}
