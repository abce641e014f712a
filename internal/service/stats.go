package service

import (
	"context"
	"fmt"

	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

// StatsService produces the admin statistics projections.
type StatsService struct {
	repo *repository.Repository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo *repository.Repository) *StatsService {
	return &StatsService{repo: repo}
}

// Statistics bundles both admin projections: per-station lifetime usage
// and the trailing-12-month demand trend.
type Statistics struct {
	StationStats  []*model.StationStat
	MonthlyDemand []*model.MonthlyDemand
}

// Collect runs both aggregate queries.
func (s *StatsService) Collect(ctx context.Context) (*Statistics, error) {
	stationStats, err := s.repo.StationStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect station stats: %w", err)
	}

	trend, err := s.repo.MonthlyDemand(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect monthly demand: %w", err)
	}

	return &Statistics{
		StationStats:  stationStats,
		MonthlyDemand: trend,
	}, nil
}
