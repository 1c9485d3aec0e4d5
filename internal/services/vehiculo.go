package services

import (
	"context"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type VehiculoService struct {
	vehiculoRepository repositories.VehiculoRepositoryInterface
	cache              repositories.CacheRepositoryInterface
	cacheTTL           time.Duration
	logger             *zap.Logger
}

func NewVehiculoService(
	vehiculoRepository repositories.VehiculoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *VehiculoService {
	return &VehiculoService{
		vehiculoRepository: vehiculoRepository,
		cache:              cache,
		cacheTTL:           cacheTTL,
		logger:             logger,
	}
}

func (s *VehiculoService) GetVehiculos(ctx context.Context, filter types.Filter) ([]entities.Vehiculo, uint64, error) {
	return cachearListado(ctx, s.cache, repositories.CacheKeyVehiculos, s.cacheTTL, filter, s.logger,
		func() ([]entities.Vehiculo, uint64, error) {
			return s.vehiculoRepository.GetVehiculos(ctx, filter)
		})
}

func (s *VehiculoService) FindVehiculo(ctx context.Context, id string) (*entities.Vehiculo, error) {
	return s.vehiculoRepository.FindVehiculo(ctx, id)
}

func (s *VehiculoService) CreateVehiculo(ctx context.Context, payload dto.CreateVehiculoDTO) (*entities.Vehiculo, error) {
	vehiculo, err := s.vehiculoRepository.CreateVehiculo(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el vehículo", zap.Error(err), zap.String("matricula", payload.Matricula))
		return nil, err
	}
	s.logger.Info("Vehículo creado", zap.String("id", vehiculo.ID), zap.String("matricula", vehiculo.Matricula))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyVehiculos)
	return vehiculo, nil
}

func (s *VehiculoService) UpdateVehiculo(ctx context.Context, id string, payload dto.UpdateVehiculoDTO) (*entities.Vehiculo, error) {
	if err := s.vehiculoRepository.UpdateVehiculo(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el vehículo", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyVehiculos)
	return s.vehiculoRepository.FindVehiculo(ctx, id)
}

func (s *VehiculoService) DeleteVehiculo(ctx context.Context, id string) error {
	if err := s.vehiculoRepository.DeleteVehiculo(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el vehículo", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Vehículo eliminado", zap.String("id", id))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyVehiculos)
	return nil
}
