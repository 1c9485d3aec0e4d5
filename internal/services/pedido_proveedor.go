package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type PedidoProveedorService struct {
	pedidoProveedorRepository repositories.PedidoProveedorRepositoryInterface
	logger                    *zap.Logger
}

func NewPedidoProveedorService(
	pedidoProveedorRepository repositories.PedidoProveedorRepositoryInterface,
	logger *zap.Logger,
) *PedidoProveedorService {
	return &PedidoProveedorService{
		pedidoProveedorRepository: pedidoProveedorRepository,
		logger:                    logger,
	}
}

func (s *PedidoProveedorService) GetPedidosProveedor(ctx context.Context, filter types.Filter) ([]entities.PedidoProveedor, uint64, error) {
	return s.pedidoProveedorRepository.GetPedidosProveedor(ctx, filter)
}

func (s *PedidoProveedorService) FindPedidoProveedor(ctx context.Context, id string) (*entities.PedidoProveedor, error) {
	return s.pedidoProveedorRepository.FindPedidoProveedor(ctx, id)
}

func (s *PedidoProveedorService) CreatePedidoProveedor(ctx context.Context, payload dto.CreatePedidoProveedorDTO) (*entities.PedidoProveedor, error) {
	pedido, err := s.pedidoProveedorRepository.CreatePedidoProveedor(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el pedido a proveedor", zap.Error(err), zap.String("numero_pedido", payload.NumeroPedido))
		return nil, err
	}
	s.logger.Info("Pedido a proveedor creado", zap.String("id", pedido.ID), zap.String("numero_pedido", pedido.NumeroPedido))
	return pedido, nil
}

func (s *PedidoProveedorService) UpdatePedidoProveedor(ctx context.Context, id string, payload dto.UpdatePedidoProveedorDTO) (*entities.PedidoProveedor, error) {
	if err := s.pedidoProveedorRepository.UpdatePedidoProveedor(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el pedido a proveedor", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	return s.pedidoProveedorRepository.FindPedidoProveedor(ctx, id)
}

func (s *PedidoProveedorService) DeletePedidoProveedor(ctx context.Context, id string) error {
	if err := s.pedidoProveedorRepository.DeletePedidoProveedor(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el pedido a proveedor", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Pedido a proveedor eliminado", zap.String("id", id))
	return nil
}
