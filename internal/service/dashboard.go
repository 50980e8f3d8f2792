package service

import (
	"context"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/internal/repository"
)

// DashboardService exposes the aggregate summary over the collections.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Summary returns counts, total revenue, and total profit. The repository
// computes everything in one pass, so the four values are consistent with a
// single point in time.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.dashboardRepo.Summary(ctx)
}
