package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type listadoCacheado[T any] struct {
	Lista []T    `json:"lista"`
	Total uint64 `json:"total"`
}

// cachearListado aplica la política de cacheo de listados: solo la primera
// página sin búsqueda ni filtros pasa por redis, el resto va directo a la
// base. Cualquier error de redis degrada a leer de la base.
func cachearListado[T any](
	ctx context.Context,
	cache repositories.CacheRepositoryInterface,
	key string,
	ttl time.Duration,
	filter types.Filter,
	logger *zap.Logger,
	fetch func() ([]T, uint64, error),
) ([]T, uint64, error) {
	cacheable := cache != nil && filter.Page == 1 && filter.Search == "" && len(filter.Filter) == 0

	if cacheable {
		if raw, err := cache.Get(ctx, key); err == nil {
			var cached listadoCacheado[T]
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached.Lista, cached.Total, nil
			}
			logger.Warn("Entrada de caché corrupta, se descarta", zap.String("key", key))
		}
	}

	lista, total, err := fetch()
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		if raw, err := json.Marshal(listadoCacheado[T]{Lista: lista, Total: total}); err == nil {
			if err := cache.Set(ctx, key, raw, ttl); err != nil {
				logger.Warn("No se pudo guardar el listado en caché", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return lista, total, nil
}

func invalidarListado(ctx context.Context, cache repositories.CacheRepositoryInterface, logger *zap.Logger, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...); err != nil {
		logger.Warn("No se pudo invalidar la caché de listados", zap.Strings("keys", keys), zap.Error(err))
	}
}

type ClienteService struct {
	clienteRepository repositories.ClienteRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	cacheTTL          time.Duration
	logger            *zap.Logger
}

func NewClienteService(
	clienteRepository repositories.ClienteRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ClienteService {
	return &ClienteService{
		clienteRepository: clienteRepository,
		cache:             cache,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

func (s *ClienteService) GetClientes(ctx context.Context, filter types.Filter) ([]entities.Cliente, uint64, error) {
	return cachearListado(ctx, s.cache, repositories.CacheKeyClientes, s.cacheTTL, filter, s.logger,
		func() ([]entities.Cliente, uint64, error) {
			return s.clienteRepository.GetClientes(ctx, filter)
		})
}

func (s *ClienteService) FindCliente(ctx context.Context, id string) (*entities.Cliente, error) {
	return s.clienteRepository.FindCliente(ctx, id)
}

func (s *ClienteService) CreateCliente(ctx context.Context, payload dto.CreateClienteDTO) (*entities.Cliente, error) {
	cliente, err := s.clienteRepository.CreateCliente(ctx, payload)
	if err != nil {
		s.logger.Error("Error al crear el cliente", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Cliente creado", zap.String("id", cliente.ID), zap.String("nombre", cliente.Nombre))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyClientes)
	return cliente, nil
}

func (s *ClienteService) UpdateCliente(ctx context.Context, id string, payload dto.UpdateClienteDTO) (*entities.Cliente, error) {
	if err := s.clienteRepository.UpdateCliente(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el cliente", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyClientes)
	return s.clienteRepository.FindCliente(ctx, id)
}
