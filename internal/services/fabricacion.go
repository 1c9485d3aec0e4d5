package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type FabricacionService struct {
	fabricacionRepository repositories.FabricacionRepositoryInterface
	logger                *zap.Logger
}

func NewFabricacionService(fabricacionRepository repositories.FabricacionRepositoryInterface, logger *zap.Logger) *FabricacionService {
	return &FabricacionService{
		fabricacionRepository: fabricacionRepository,
		logger:                logger,
	}
}

func (s *FabricacionService) GetProductosEnFabricacion(ctx context.Context, filter types.Filter) ([]entities.ProductoEnFabricacion, uint64, error) {
	return s.fabricacionRepository.GetProductosEnFabricacion(ctx, filter)
}

func (s *FabricacionService) FindProductoEnFabricacion(ctx context.Context, id string) (*entities.ProductoEnFabricacion, error) {
	return s.fabricacionRepository.FindProductoEnFabricacion(ctx, id)
}

func (s *FabricacionService) CreateProductoEnFabricacion(ctx context.Context, payload dto.CreateProductoEnFabricacionDTO) (*entities.ProductoEnFabricacion, error) {
	producto, err := s.fabricacionRepository.CreateProductoEnFabricacion(ctx, payload)
	if err != nil {
		s.logger.Error("Error al registrar el producto en fabricación", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Producto en fabricación registrado", zap.String("id", producto.ID), zap.String("nombre", producto.NombreProducto))
	return producto, nil
}

func (s *FabricacionService) UpdateProductoEnFabricacion(ctx context.Context, id string, payload dto.UpdateProductoEnFabricacionDTO) (*entities.ProductoEnFabricacion, error) {
	if err := s.fabricacionRepository.UpdateProductoEnFabricacion(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el producto en fabricación", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	return s.fabricacionRepository.FindProductoEnFabricacion(ctx, id)
}

func (s *FabricacionService) DeleteProductoEnFabricacion(ctx context.Context, id string) error {
	if err := s.fabricacionRepository.DeleteProductoEnFabricacion(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el producto en fabricación", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Producto en fabricación eliminado", zap.String("id", id))
	return nil
}
