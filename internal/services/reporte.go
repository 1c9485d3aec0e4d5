package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"

	"go.uber.org/zap"
)

type ReporteService struct {
	reporteRepository repositories.ReporteRepositoryInterface
	logger            *zap.Logger
}

func NewReporteService(reporteRepository repositories.ReporteRepositoryInterface, logger *zap.Logger) *ReporteService {
	return &ReporteService{
		reporteRepository: reporteRepository,
		logger:            logger,
	}
}

func (s *ReporteService) GetReportePedidos(ctx context.Context, filter entities.ReporteFilter) ([]entities.ReporteItem, *entities.ReporteResumen, error) {
	items, resumen, err := s.reporteRepository.GetReportePedidos(ctx, filter)
	if err != nil {
		s.logger.Error("Error al armar el reporte de pedidos", zap.Error(err))
		return nil, nil, err
	}
	return items, resumen, nil
}
