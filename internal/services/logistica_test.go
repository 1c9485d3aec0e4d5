package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLogisticaRepo struct {
	err error

	instalacionID string
	vehiculoID    string
	llamadas      int
}

func (f *fakeLogisticaRepo) AsignarVehiculo(_ context.Context, instalacionID string, vehiculoID string) error {
	f.llamadas++
	f.instalacionID = instalacionID
	f.vehiculoID = vehiculoID
	return f.err
}

type fakeInstalacionRepo struct {
	instalacion *entities.Instalacion
}

func (f *fakeInstalacionRepo) GetInstalaciones(_ context.Context, _ types.Filter) ([]entities.Instalacion, uint64, error) {
	return nil, 0, nil
}

func (f *fakeInstalacionRepo) FindInstalacion(_ context.Context, _ string) (*entities.Instalacion, error) {
	return f.instalacion, nil
}

func (f *fakeInstalacionRepo) CreateInstalacion(_ context.Context, _ dto.CreateInstalacionDTO) (*entities.Instalacion, error) {
	return f.instalacion, nil
}

func (f *fakeInstalacionRepo) UpdateInstalacion(_ context.Context, _ string, _ dto.UpdateInstalacionDTO) error {
	return nil
}

func (f *fakeInstalacionRepo) DeleteInstalacion(_ context.Context, _ string) error { return nil }

type fakeCache struct {
	borradas []string
}

func (f *fakeCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeCache) Get(_ context.Context, _ string) (string, error) {
	return "", errors.New("cache miss")
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.borradas = append(f.borradas, keys...)
	return nil
}

func TestAsignarVehiculoOK(t *testing.T) {
	vehiculoID := "v-1"
	instalacion := &entities.Instalacion{ID: "i-1", Codigo: "INS-001", VehiculoID: &vehiculoID}
	logisticaRepo := &fakeLogisticaRepo{}
	cache := &fakeCache{}
	svc := NewLogisticaService(logisticaRepo, &fakeInstalacionRepo{instalacion: instalacion}, cache, zap.NewNop())

	resultado, err := svc.AsignarVehiculo(context.Background(), "i-1", "v-1")

	require.NoError(t, err)
	require.NotNil(t, resultado)
	assert.Equal(t, "i-1", logisticaRepo.instalacionID)
	assert.Equal(t, "v-1", logisticaRepo.vehiculoID)
	require.NotNil(t, resultado.VehiculoID)
	assert.Equal(t, "v-1", *resultado.VehiculoID)

	// La disponibilidad de los vehículos cambió: el listado cacheado se tira.
	assert.Contains(t, cache.borradas, repositories.CacheKeyVehiculos)
}

func TestAsignarVehiculoOcupado(t *testing.T) {
	logisticaRepo := &fakeLogisticaRepo{err: apperrors.ErrVehiculoNoDisponible}
	svc := NewLogisticaService(logisticaRepo, &fakeInstalacionRepo{}, nil, zap.NewNop())

	_, err := svc.AsignarVehiculo(context.Background(), "i-1", "v-2")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrVehiculoNoDisponible)
}

func TestAsignarVehiculoInstalacionInexistente(t *testing.T) {
	logisticaRepo := &fakeLogisticaRepo{err: apperrors.ErrNotFound}
	svc := NewLogisticaService(logisticaRepo, &fakeInstalacionRepo{}, nil, zap.NewNop())

	_, err := svc.AsignarVehiculo(context.Background(), "i-404", "v-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
