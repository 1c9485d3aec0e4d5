package repositories

import (
	"context"
	"testing"

	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearVehiculo(t *testing.T, matricula string, disponible bool) string {
	t.Helper()
	var id string
	require.NoError(t, testPool.QueryRow(context.Background(),
		"INSERT INTO vehiculos (matricula, modelo, disponible) VALUES ($1, $2, $3) RETURNING id",
		matricula, "Fiat Ducato", disponible,
	).Scan(&id))
	return id
}

func crearInstalacion(t *testing.T, codigo string) string {
	t.Helper()
	var id string
	require.NoError(t, testPool.QueryRow(context.Background(),
		"INSERT INTO instalaciones (codigo, fecha) VALUES ($1, CURRENT_DATE) RETURNING id",
		codigo,
	).Scan(&id))
	return id
}

func estadoVehiculo(t *testing.T, id string) bool {
	t.Helper()
	var disponible bool
	require.NoError(t, testPool.QueryRow(context.Background(),
		"SELECT disponible FROM vehiculos WHERE id = $1", id,
	).Scan(&disponible))
	return disponible
}

func vehiculoDeInstalacion(t *testing.T, id string) *string {
	t.Helper()
	var vehiculoID *string
	require.NoError(t, testPool.QueryRow(context.Background(),
		"SELECT vehiculo_id FROM instalaciones WHERE id = $1", id,
	).Scan(&vehiculoID))
	return vehiculoID
}

func TestAsignarVehiculoYReasignar(t *testing.T) {
	requireTestDB(t)
	limpiarTablas(t)
	repo := NewLogisticaRepository(testPool)
	ctx := context.Background()

	instalacion := crearInstalacion(t, "INS-001")
	vehiculoA := crearVehiculo(t, "AB123CD", true)
	vehiculoB := crearVehiculo(t, "AC456DE", true)

	require.NoError(t, repo.AsignarVehiculo(ctx, instalacion, vehiculoA))
	asignado := vehiculoDeInstalacion(t, instalacion)
	require.NotNil(t, asignado)
	assert.Equal(t, vehiculoA, *asignado)
	assert.False(t, estadoVehiculo(t, vehiculoA))

	// Reasignar aplica los tres efectos: B queda en la instalación y ocupado,
	// A vuelve a estar disponible.
	require.NoError(t, repo.AsignarVehiculo(ctx, instalacion, vehiculoB))
	asignado = vehiculoDeInstalacion(t, instalacion)
	require.NotNil(t, asignado)
	assert.Equal(t, vehiculoB, *asignado)
	assert.False(t, estadoVehiculo(t, vehiculoB))
	assert.True(t, estadoVehiculo(t, vehiculoA))
}

func TestAsignarVehiculoOcupadoNoCambiaNada(t *testing.T) {
	requireTestDB(t)
	limpiarTablas(t)
	repo := NewLogisticaRepository(testPool)
	ctx := context.Background()

	primera := crearInstalacion(t, "INS-001")
	segunda := crearInstalacion(t, "INS-002")
	vehiculo := crearVehiculo(t, "AB123CD", true)

	require.NoError(t, repo.AsignarVehiculo(ctx, primera, vehiculo))

	err := repo.AsignarVehiculo(ctx, segunda, vehiculo)
	assert.ErrorIs(t, err, apperrors.ErrVehiculoNoDisponible)

	// La asignación original queda intacta y la segunda instalación sin
	// vehículo.
	asignado := vehiculoDeInstalacion(t, primera)
	require.NotNil(t, asignado)
	assert.Equal(t, vehiculo, *asignado)
	assert.Nil(t, vehiculoDeInstalacion(t, segunda))
	assert.False(t, estadoVehiculo(t, vehiculo))
}

func TestAsignarMismoVehiculoEsNoOp(t *testing.T) {
	requireTestDB(t)
	limpiarTablas(t)
	repo := NewLogisticaRepository(testPool)
	ctx := context.Background()

	instalacion := crearInstalacion(t, "INS-001")
	vehiculo := crearVehiculo(t, "AB123CD", true)

	require.NoError(t, repo.AsignarVehiculo(ctx, instalacion, vehiculo))
	require.NoError(t, repo.AsignarVehiculo(ctx, instalacion, vehiculo))

	asignado := vehiculoDeInstalacion(t, instalacion)
	require.NotNil(t, asignado)
	assert.Equal(t, vehiculo, *asignado)
	assert.False(t, estadoVehiculo(t, vehiculo))
}

func TestAsignarVehiculoInstalacionInexistente(t *testing.T) {
	requireTestDB(t)
	limpiarTablas(t)
	repo := NewLogisticaRepository(testPool)

	vehiculo := crearVehiculo(t, "AB123CD", true)

	err := repo.AsignarVehiculo(context.Background(), "3f1a2b3c-0000-4000-8000-0000000000ff", vehiculo)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
