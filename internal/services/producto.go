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

type ProductoService struct {
	productoRepository repositories.ProductoRepositoryInterface
	cache              repositories.CacheRepositoryInterface
	cacheTTL           time.Duration
	logger             *zap.Logger
}

func NewProductoService(
	productoRepository repositories.ProductoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ProductoService {
	return &ProductoService{
		productoRepository: productoRepository,
		cache:              cache,
		cacheTTL:           cacheTTL,
		logger:             logger,
	}
}

func (s *ProductoService) GetProductos(ctx context.Context, filter types.Filter, soloPlantillas bool) ([]entities.Producto, uint64, error) {
	if soloPlantillas {
		// El listado de plantillas para el formulario no pasa por caché: es
		// chico y cambia junto con los productos.
		return s.productoRepository.GetProductos(ctx, filter, true)
	}
	return cachearListado(ctx, s.cache, repositories.CacheKeyProductos, s.cacheTTL, filter, s.logger,
		func() ([]entities.Producto, uint64, error) {
			return s.productoRepository.GetProductos(ctx, filter, false)
		})
}

func (s *ProductoService) FindProducto(ctx context.Context, id string) (*entities.Producto, error) {
	return s.productoRepository.FindProducto(ctx, id)
}

func (s *ProductoService) CreateProducto(ctx context.Context, payload dto.CreateProductoDTO) (*entities.Producto, error) {
	producto, err := s.productoRepository.CreateProducto(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el producto", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Producto creado", zap.String("id", producto.ID), zap.String("tipo_sistema", producto.TipoSistema))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProductos)
	return producto, nil
}

func (s *ProductoService) UpdateProducto(ctx context.Context, id string, payload dto.UpdateProductoDTO) (*entities.Producto, error) {
	if err := s.productoRepository.UpdateProducto(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el producto", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProductos)
	return s.productoRepository.FindProducto(ctx, id)
}

func (s *ProductoService) DeleteProducto(ctx context.Context, id string) error {
	if err := s.productoRepository.DeleteProducto(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el producto", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Producto eliminado", zap.String("id", id))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyProductos)
	return nil
}
