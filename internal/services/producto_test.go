package services

import (
	"context"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductoRepo struct {
	listados int
}

func (f *fakeProductoRepo) GetProductos(_ context.Context, _ types.Filter, _ bool) ([]entities.Producto, uint64, error) {
	f.listados++
	return []entities.Producto{{ID: "pr-1", TipoSistema: "techo"}}, 1, nil
}

func (f *fakeProductoRepo) FindProducto(_ context.Context, id string) (*entities.Producto, error) {
	return &entities.Producto{ID: id, TipoSistema: "techo"}, nil
}

func (f *fakeProductoRepo) CreateProducto(_ context.Context, payload dto.CreateProductoDTO) (*entities.Producto, error) {
	return &entities.Producto{
		ID:          "pr-1",
		TipoSistema: payload.TipoSistema,
		Descripcion: payload.Descripcion,
		EsPlantilla: payload.EsPlantilla,
	}, nil
}

func (f *fakeProductoRepo) UpdateProducto(_ context.Context, _ string, _ dto.UpdateProductoDTO) error {
	return nil
}

func (f *fakeProductoRepo) DeleteProducto(_ context.Context, _ string) error { return nil }

func TestCreateProductoInvalidaListado(t *testing.T) {
	cache := &fakeCache{}
	svc := NewProductoService(&fakeProductoRepo{}, cache, time.Minute, zap.NewNop())

	descripcion := "Techo vidriado estándar"
	producto, err := svc.CreateProducto(context.Background(), dto.CreateProductoDTO{
		TipoSistema: "techo",
		Descripcion: &descripcion,
		EsPlantilla: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "techo", producto.TipoSistema)
	assert.True(t, producto.EsPlantilla)
	assert.Contains(t, cache.borradas, repositories.CacheKeyProductos)
}

func TestGetProductosPlantillasNoPasaPorCache(t *testing.T) {
	repo := &fakeProductoRepo{}
	cache := &fakeCache{}
	svc := NewProductoService(repo, cache, time.Minute, zap.NewNop())

	// El listado de plantillas siempre va a la base.
	for i := 0; i < 2; i++ {
		_, total, err := svc.GetProductos(context.Background(), types.Filter{Page: 1, Limit: 10}, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	}
	assert.Equal(t, 2, repo.listados)
}
