package services

import (
	"context"
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

type fakeHerramientaRepo struct {
	getCalls int
}

func (f *fakeHerramientaRepo) GetHerramientas(_ context.Context, _ types.Filter) ([]entities.Herramienta, uint64, error) {
	f.getCalls++
	return []entities.Herramienta{{ID: "h-1", Nombre: "Taladro percutor", CantidadTotal: 3, CantidadDisponible: 2}}, 1, nil
}

func (f *fakeHerramientaRepo) FindHerramienta(_ context.Context, _ string) (*entities.Herramienta, error) {
	return &entities.Herramienta{ID: "h-1", Nombre: "Taladro percutor"}, nil
}

func (f *fakeHerramientaRepo) CreateHerramienta(_ context.Context, payload dto.CreateHerramientaDTO) (*entities.Herramienta, error) {
	return &entities.Herramienta{
		ID:                 "h-2",
		Nombre:             payload.Nombre,
		CantidadTotal:      payload.CantidadTotal,
		CantidadDisponible: payload.CantidadDisponible,
	}, nil
}

func (f *fakeHerramientaRepo) UpdateHerramienta(_ context.Context, _ string, _ dto.UpdateHerramientaDTO) error {
	return nil
}

func (f *fakeHerramientaRepo) DeleteHerramienta(_ context.Context, _ string) error { return nil }

func TestCreateHerramientaDisponibleSuperaTotal(t *testing.T) {
	svc := NewHerramientaService(&fakeHerramientaRepo{}, nil, time.Minute, zap.NewNop())

	_, err := svc.CreateHerramienta(context.Background(), dto.CreateHerramientaDTO{
		Nombre:             "Andamio",
		CantidadTotal:      2,
		CantidadDisponible: 5,
	})

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestUpdateHerramientaDisponibleSuperaTotal(t *testing.T) {
	svc := NewHerramientaService(&fakeHerramientaRepo{}, nil, time.Minute, zap.NewNop())

	total, disponible := 2, 5
	_, err := svc.UpdateHerramienta(context.Background(), "h-1", dto.UpdateHerramientaDTO{
		CantidadTotal:      &total,
		CantidadDisponible: &disponible,
	})

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestCreateHerramientaInvalidaCache(t *testing.T) {
	cache := &fakeCache{}
	svc := NewHerramientaService(&fakeHerramientaRepo{}, cache, time.Minute, zap.NewNop())

	_, err := svc.CreateHerramienta(context.Background(), dto.CreateHerramientaDTO{
		Nombre:             "Ventosa doble",
		CantidadTotal:      4,
		CantidadDisponible: 4,
	})

	require.NoError(t, err)
	assert.Contains(t, cache.borradas, repositories.CacheKeyHerramientas)
}

func TestGetHerramientasSinCacheVaALaBase(t *testing.T) {
	repo := &fakeHerramientaRepo{}
	svc := NewHerramientaService(repo, nil, time.Minute, zap.NewNop())

	lista, total, err := svc.GetHerramientas(context.Background(), types.Filter{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, lista, 1)
	assert.Equal(t, 1, repo.getCalls)
}
