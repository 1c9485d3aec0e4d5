package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type InstalacionService struct {
	instalacionRepository repositories.InstalacionRepositoryInterface
	logger                *zap.Logger
}

func NewInstalacionService(instalacionRepository repositories.InstalacionRepositoryInterface, logger *zap.Logger) *InstalacionService {
	return &InstalacionService{
		instalacionRepository: instalacionRepository,
		logger:                logger,
	}
}

func (s *InstalacionService) GetInstalaciones(ctx context.Context, filter types.Filter) ([]entities.Instalacion, uint64, error) {
	return s.instalacionRepository.GetInstalaciones(ctx, filter)
}

func (s *InstalacionService) FindInstalacion(ctx context.Context, id string) (*entities.Instalacion, error) {
	return s.instalacionRepository.FindInstalacion(ctx, id)
}

func (s *InstalacionService) CreateInstalacion(ctx context.Context, payload dto.CreateInstalacionDTO) (*entities.Instalacion, error) {
	instalacion, err := s.instalacionRepository.CreateInstalacion(ctx, payload)
	if err != nil {
		s.logger.Error("Error al programar la instalación", zap.Error(err), zap.String("codigo", payload.Codigo))
		return nil, err
	}
	s.logger.Info("Instalación programada",
		zap.String("id", instalacion.ID),
		zap.String("codigo", instalacion.Codigo),
		zap.Time("fecha", instalacion.Fecha),
	)
	return instalacion, nil
}

func (s *InstalacionService) UpdateInstalacion(ctx context.Context, id string, payload dto.UpdateInstalacionDTO) (*entities.Instalacion, error) {
	if err := s.instalacionRepository.UpdateInstalacion(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar la instalación", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	return s.instalacionRepository.FindInstalacion(ctx, id)
}

func (s *InstalacionService) DeleteInstalacion(ctx context.Context, id string) error {
	if err := s.instalacionRepository.DeleteInstalacion(ctx, id); err != nil {
		s.logger.Error("Error al eliminar la instalación", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Instalación eliminada", zap.String("id", id))
	return nil
}
