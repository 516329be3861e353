package app

import (
	"context"

	"github.com/cimillas/event-admin/internal/domain"
)

type DashboardRepository interface {
	Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error)
	Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error)
	Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error)
}

// DashboardService serves the read-only aggregates. An owner with no events,
// or an unknown owner, gets zero metrics and empty lists.
type DashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error) {
	if err := requireID("profile_id", ownerID); err != nil {
		return domain.DashboardMetrics{}, err
	}
	return s.repo.Metrics(ctx, ownerID)
}

func (s *DashboardService) Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error) {
	if err := requireID("profile_id", ownerID); err != nil {
		return nil, err
	}
	return s.repo.Performance(ctx, ownerID)
}

func (s *DashboardService) Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error) {
	if err := requireID("profile_id", ownerID); err != nil {
		return nil, err
	}
	return s.repo.Distribution(ctx, ownerID)
}

// Dashboard runs the three reads one after another; each is its own query.
func (s *DashboardService) Dashboard(ctx context.Context, ownerID int64) (domain.Dashboard, error) {
	m, err := s.Metrics(ctx, ownerID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	perf, err := s.repo.Performance(ctx, ownerID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	dist, err := s.repo.Distribution(ctx, ownerID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.Dashboard{Metrics: m, Performance: perf, Distribution: dist}, nil
}
