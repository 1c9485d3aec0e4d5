package services

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type PedidoService struct {
	pedidoRepository repositories.PedidoRepositoryInterface
	logger           *zap.Logger
}

func NewPedidoService(pedidoRepository repositories.PedidoRepositoryInterface, logger *zap.Logger) *PedidoService {
	return &PedidoService{
		pedidoRepository: pedidoRepository,
		logger:           logger,
	}
}

func (s *PedidoService) GetPedidos(ctx context.Context, filter types.Filter) ([]entities.Pedido, uint64, error) {
	return s.pedidoRepository.GetPedidos(ctx, filter)
}

func (s *PedidoService) FindPedido(ctx context.Context, id string) (*entities.Pedido, error) {
	return s.pedidoRepository.FindPedido(ctx, id)
}

func (s *PedidoService) CreatePedido(ctx context.Context, payload dto.CreatePedidoDTO) (*entities.Pedido, error) {
	pedido, err := s.pedidoRepository.CreatePedido(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el pedido", zap.Error(err), zap.String("numero_orden", payload.NumeroOrden))
		return nil, err
	}
	s.logger.Info("Pedido creado", zap.String("id", pedido.ID), zap.String("numero_orden", pedido.NumeroOrden))
	return pedido, nil
}

func (s *PedidoService) UpdatePedido(ctx context.Context, id string, payload dto.UpdatePedidoDTO) (*entities.Pedido, error) {
	if err := s.pedidoRepository.UpdatePedido(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el pedido", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	return s.pedidoRepository.FindPedido(ctx, id)
}

func (s *PedidoService) DeletePedido(ctx context.Context, id string) error {
	if err := s.pedidoRepository.DeletePedido(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el pedido", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Pedido eliminado", zap.String("id", id))
	return nil
}
