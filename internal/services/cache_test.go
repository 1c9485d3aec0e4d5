package services

import (
	"context"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memCache guarda en memoria para probar la semántica de cachearListado sin
// redis.
type memCache struct {
	datos map[string]string
}

func newMemCache() *memCache { return &memCache{datos: map[string]string{}} }

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s, ok := value.(string)
	if !ok {
		if b, esBytes := value.([]byte); esBytes {
			s = string(b)
		}
	}
	m.datos[key] = s
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.datos[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (m *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.datos, k)
	}
	return nil
}

func TestCachearListadoSegundaLecturaSinBase(t *testing.T) {
	cache := newMemCache()
	llamadas := 0
	fetch := func() ([]entities.Cliente, uint64, error) {
		llamadas++
		return []entities.Cliente{{ID: "c-1", Nombre: "Laura Méndez"}}, 1, nil
	}

	filtro := types.Filter{Page: 1}
	for i := 0; i < 3; i++ {
		lista, total, err := cachearListado(context.Background(), cache, "listado:test", time.Minute, filtro, zap.NewNop(), fetch)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, lista, 1)
		assert.Equal(t, "Laura Méndez", lista[0].Nombre)
	}

	assert.Equal(t, 1, llamadas, "solo la primera lectura debe tocar la base")
}

func TestCachearListadoNoAplicaConFiltros(t *testing.T) {
	cache := newMemCache()
	llamadas := 0
	fetch := func() ([]entities.Cliente, uint64, error) {
		llamadas++
		return nil, 0, nil
	}

	casos := []types.Filter{
		{Page: 2},
		{Page: 1, Search: "laura"},
		{Page: 1, Filter: map[string]interface{}{"ciudad": "Rosario"}},
	}
	for _, filtro := range casos {
		_, _, err := cachearListado(context.Background(), cache, "listado:test", time.Minute, filtro, zap.NewNop(), fetch)
		require.NoError(t, err)
	}

	assert.Equal(t, len(casos), llamadas)
	assert.Empty(t, cache.datos, "las lecturas filtradas no deben poblar la caché")
}

func TestCachearListadoEntradaCorrupta(t *testing.T) {
	cache := newMemCache()
	cache.datos["listado:test"] = "{esto no es json"
	fetch := func() ([]entities.Cliente, uint64, error) {
		return []entities.Cliente{{ID: "c-1", Nombre: "Laura Méndez"}}, 1, nil
	}

	lista, total, err := cachearListado(context.Background(), cache, "listado:test", time.Minute, types.Filter{Page: 1}, zap.NewNop(), fetch)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, lista, 1)
}

func TestInvalidarListadoSinCache(t *testing.T) {
	// Con cache nil es un no-op; no debe entrar en pánico.
	invalidarListado(context.Background(), nil, zap.NewNop(), "listado:test")
}
