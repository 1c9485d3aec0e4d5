package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"

	"go.uber.org/zap"
)

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		logger:              logger,
	}
}

func (s *DashboardService) GetContadores(ctx context.Context) (*dto.DashboardContadoresDTO, error) {
	contadores, err := s.dashboardRepository.GetContadores(ctx)
	if err != nil {
		s.logger.Error("Error al armar los contadores del tablero", zap.Error(err))
		return nil, err
	}
	return contadores, nil
}
