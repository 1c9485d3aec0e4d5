package services

import (
	"context"
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"

	"go.uber.org/zap"
)

type LogisticaService struct {
	logisticaRepository   repositories.LogisticaRepositoryInterface
	instalacionRepository repositories.InstalacionRepositoryInterface
	cache                 repositories.CacheRepositoryInterface
	logger                *zap.Logger
}

func NewLogisticaService(
	logisticaRepository repositories.LogisticaRepositoryInterface,
	instalacionRepository repositories.InstalacionRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *LogisticaService {
	return &LogisticaService{
		logisticaRepository:   logisticaRepository,
		instalacionRepository: instalacionRepository,
		cache:                 cache,
		logger:                logger,
	}
}

// AsignarVehiculo asigna el vehículo a la instalación. Los tres efectos
// (vehículo en la instalación, nuevo vehículo ocupado, vehículo anterior
// liberado) se aplican de forma atómica; si el vehículo ya está ocupado por
// otra instalación la operación falla con 409.
func (s *LogisticaService) AsignarVehiculo(ctx context.Context, instalacionID string, vehiculoID string) (*entities.Instalacion, error) {
	err := s.logisticaRepository.AsignarVehiculo(ctx, instalacionID, vehiculoID)
	if err != nil {
		if err == apperrors.ErrVehiculoNoDisponible {
			return nil, apperrors.NewHttpError(
				http.StatusConflict,
				"El vehículo no está disponible",
				err,
				map[string]interface{}{"instalacion_id": instalacionID, "vehiculo_id": vehiculoID},
			)
		}
		s.logger.Error("Error al asignar el vehículo",
			zap.Error(err),
			zap.String("instalacion_id", instalacionID),
			zap.String("vehiculo_id", vehiculoID),
		)
		return nil, err
	}

	s.logger.Info("Vehículo asignado",
		zap.String("instalacion_id", instalacionID),
		zap.String("vehiculo_id", vehiculoID),
	)
	invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyVehiculos)
	return s.instalacionRepository.FindInstalacion(ctx, instalacionID)
}
