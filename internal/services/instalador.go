package services

import (
	"context"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type InstaladorService struct {
	instaladorRepository repositories.InstaladorRepositoryInterface
	cache                repositories.CacheRepositoryInterface
	cacheTTL             time.Duration
	logger               *zap.Logger
}

func NewInstaladorService(
	instaladorRepository repositories.InstaladorRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *InstaladorService {
	return &InstaladorService{
		instaladorRepository: instaladorRepository,
		cache:                cache,
		cacheTTL:             cacheTTL,
		logger:               logger,
	}
}

func (s *InstaladorService) GetInstaladores(ctx context.Context, filter types.Filter) ([]entities.Instalador, uint64, error) {
	return cachearListado(ctx, s.cache, repositories.CacheKeyInstaladores, s.cacheTTL, filter, s.logger,
		func() ([]entities.Instalador, uint64, error) {
			return s.instaladorRepository.GetInstaladores(ctx, filter)
		})
}

func (s *InstaladorService) FindInstalador(ctx context.Context, id string) (*entities.Instalador, error) {
	return s.instaladorRepository.FindInstalador(ctx, id)
}

func hashPassword(password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	return &hashStr, nil
}

func (s *InstaladorService) CreateInstalador(ctx context.Context, payload dto.CreateInstaladorDTO) (*entities.Instalador, error) {
	passwordHash, err := hashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	instalador, err := s.instaladorRepository.CreateInstalador(ctx, payload, passwordHash)
	if err != nil {
		s.logger.Error("Error al crear el instalador", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Instalador creado", zap.String("id", instalador.ID), zap.String("nombre", instalador.Nombre))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyInstaladores)
	return instalador, nil
}

func (s *InstaladorService) UpdateInstalador(ctx context.Context, id string, payload dto.UpdateInstaladorDTO) (*entities.Instalador, error) {
	passwordHash, err := hashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	if err := s.instaladorRepository.UpdateInstalador(ctx, id, payload, passwordHash); err != nil {
		s.logger.Error("Error al actualizar el instalador", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyInstaladores)
	return s.instaladorRepository.FindInstalador(ctx, id)
}

// DeactivateInstalador baja lógica: las instalaciones históricas siguen
// apuntando a la fila.
func (s *InstaladorService) DeactivateInstalador(ctx context.Context, id string) error {
	if err := s.instaladorRepository.DeactivateInstalador(ctx, id); err != nil {
		s.logger.Error("Error al desactivar el instalador", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Instalador desactivado", zap.String("id", id))
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyInstaladores)
	return nil
}
