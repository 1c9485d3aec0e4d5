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

type ProveedorService struct {
	proveedorRepository repositories.ProveedorRepositoryInterface
	cache               repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewProveedorService(
	proveedorRepository repositories.ProveedorRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ProveedorService {
	return &ProveedorService{
		proveedorRepository: proveedorRepository,
		cache:               cache,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

func (s *ProveedorService) GetProveedores(ctx context.Context, filter types.Filter) ([]entities.Proveedor, uint64, error) {
	return cachearListado(ctx, s.cache, repositories.CacheKeyProveedores, s.cacheTTL, filter, s.logger,
		func() ([]entities.Proveedor, uint64, error) {
			return s.proveedorRepository.GetProveedores(ctx, filter)
		})
}

func (s *ProveedorService) FindProveedor(ctx context.Context, id string) (*entities.Proveedor, error) {
	return s.proveedorRepository.FindProveedor(ctx, id)
}

func (s *ProveedorService) CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (*entities.Proveedor, error) {
	proveedor, err := s.proveedorRepository.CreateProveedor(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el proveedor", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Proveedor creado", zap.String("id", proveedor.ID), zap.String("nombre", proveedor.Nombre))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProveedores)
	return proveedor, nil
}

func (s *ProveedorService) UpdateProveedor(ctx context.Context, id string, payload dto.UpdateProveedorDTO) (*entities.Proveedor, error) {
	if err := s.proveedorRepository.UpdateProveedor(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el proveedor", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProveedores)
	return s.proveedorRepository.FindProveedor(ctx, id)
}

func (s *ProveedorService) DeleteProveedor(ctx context.Context, id string) error {
	if err := s.proveedorRepository.DeleteProveedor(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el proveedor", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Proveedor eliminado", zap.String("id", id))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProveedores)
	return nil
}
