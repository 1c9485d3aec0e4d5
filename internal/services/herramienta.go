package services

import (
	"context"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type HerramientaService struct {
	herramientaRepository repositories.HerramientaRepositoryInterface
	cache                 repositories.CacheRepositoryInterface
	cacheTTL              time.Duration
	logger                *zap.Logger
}

func NewHerramientaService(
	herramientaRepository repositories.HerramientaRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *HerramientaService {
	return &HerramientaService{
		herramientaRepository: herramientaRepository,
		cache:                 cache,
		cacheTTL:              cacheTTL,
		logger:                logger,
	}
}

func (s *HerramientaService) GetHerramientas(ctx context.Context, filter types.Filter) ([]entities.Herramienta, uint64, error) {
	return cachearListado(ctx, s.cache, repositories.CacheKeyHerramientas, s.cacheTTL, filter, s.logger,
		func() ([]entities.Herramienta, uint64, error) {
			return s.herramientaRepository.GetHerramientas(ctx, filter)
		})
}

func (s *HerramientaService) FindHerramienta(ctx context.Context, id string) (*entities.Herramienta, error) {
	return s.herramientaRepository.FindHerramienta(ctx, id)
}

func (s *HerramientaService) CreateHerramienta(ctx context.Context, payload dto.CreateHerramientaDTO) (*entities.Herramienta, error) {
	if payload.CantidadDisponible > payload.CantidadTotal {
		return nil, apperrors.NewInvalidInputError(
			"La cantidad disponible (%d) no puede superar la cantidad total (%d)",
			payload.CantidadDisponible, payload.CantidadTotal,
		)
	}

	herramienta, err := s.herramientaRepository.CreateHerramienta(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear la herramienta", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Herramienta creada", zap.String("id", herramienta.ID), zap.String("nombre", herramienta.Nombre))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyHerramientas)
	return herramienta, nil
}

func (s *HerramientaService) UpdateHerramienta(ctx context.Context, id string, payload dto.UpdateHerramientaDTO) (*entities.Herramienta, error) {
	if payload.CantidadTotal != nil && payload.CantidadDisponible != nil && *payload.CantidadDisponible > *payload.CantidadTotal {
		return nil, apperrors.NewInvalidInputError(
			"La cantidad disponible (%d) no puede superar la cantidad total (%d)",
			*payload.CantidadDisponible, *payload.CantidadTotal,
		)
	}

	if err := s.herramientaRepository.UpdateHerramienta(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar la herramienta", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyHerramientas)
	return s.herramientaRepository.FindHerramienta(ctx, id)
}

func (s *HerramientaService) DeleteHerramienta(ctx context.Context, id string) error {
	if err := s.herramientaRepository.DeleteHerramienta(ctx, id); err != nil {
		s.logger.Error("Error al eliminar la herramienta", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Herramienta eliminada", zap.String("id", id))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyHerramientas)
	return nil
}
