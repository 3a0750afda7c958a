package services

import (
	"context"

	"github.com/karimfs/skybook/internal/client/models"
)

type DashboardService struct {
	backend Backend
}

func NewDashboardService(backend Backend) *DashboardService {
	return &DashboardService{backend: backend}
}

func (s *DashboardService) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if err := s.backend.Get(ctx, "/dashboard/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
