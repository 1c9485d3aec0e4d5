package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type stubReporteRepo struct {
	filter entities.ReporteFilter
}

func (s *stubReporteRepo) GetReportePedidos(_ context.Context, filter entities.ReporteFilter) ([]entities.ReporteItem, *entities.ReporteResumen, error) {
	s.filter = filter
	precio := 125000.0
	entrega := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	items := []entities.ReporteItem{
		{
			NumeroOrden:          "PED-0001",
			ClienteNombre:        "Laura Méndez",
			TipoVentana:          "corrediza",
			Estado:               "en_proceso",
			Precio:               &precio,
			Urgente:              true,
			FechaPedido:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			FechaEntregaEstimada: &entrega,
			DiasAbierto:          14,
		},
		{
			NumeroOrden:   "PED-0002",
			ClienteNombre: "Carlos Ruiz",
			TipoVentana:   "paño fijo",
			Estado:        "pendiente",
			FechaPedido:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			DiasAbierto:   5,
		},
	}
	resumen := &entities.ReporteResumen{
		TotalPedidos:    2,
		TotalFacturado:  125000,
		PedidosUrgentes: 1,
		CuentaPorEstado: map[string]uint64{"en_proceso": 1, "pendiente": 1},
		MontoPorEstado:  map[string]float64{"en_proceso": 125000},
	}
	return items, resumen, nil
}

func newReporteController(repo *stubReporteRepo) *ReporteController {
	svc := services.NewReporteService(repo, zap.NewNop())
	return NewReporteController(svc, zap.NewNop())
}

func TestReporteJSON(t *testing.T) {
	e := newEcho(t)
	ctrl := newReporteController(&stubReporteRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/pedidos", nil)
	rec := httptest.NewRecorder()

	err := ctrl.GetReportePedidos(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PED-0001")
	assert.Contains(t, rec.Body.String(), `"total_pedidos":2`)
}

func TestReporteXLSX(t *testing.T) {
	e := newEcho(t)
	ctrl := newReporteController(&stubReporteRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/pedidos?format=xlsx", nil)
	rec := httptest.NewRecorder()

	err := ctrl.GetReportePedidos(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType),
	)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "reporte_pedidos_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Reporte de pedidos"
	encabezado, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "N° de orden", encabezado)

	orden, _ := f.GetCellValue(sheet, "A2")
	assert.Equal(t, "PED-0001", orden)
	urgente, _ := f.GetCellValue(sheet, "F2")
	assert.Equal(t, "Sí", urgente)

	// El bloque de resumen arranca dos filas después del listado.
	totalLabel, _ := f.GetCellValue(sheet, "A5")
	assert.Equal(t, "Total de pedidos", totalLabel)
}

func TestParseReporteFilter(t *testing.T) {
	e := newEcho(t)
	req := httptest.NewRequest(http.MethodGet,
		"/api/reportes/pedidos?date_from=2026-03-01&date_to=2026-03-31&estados=pendiente,en_proceso&urgentes=true&page=2&per_page=50", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	filter, format := parseReporteFilter(c)

	assert.Equal(t, "json", format)
	require.NotNil(t, filter.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	// El límite superior cubre el día completo.
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), *filter.DateTo)
	assert.Equal(t, []string{"pendiente", "en_proceso"}, filter.Estados)
	require.NotNil(t, filter.Urgentes)
	assert.True(t, *filter.Urgentes)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 50, filter.PerPage)
}

func TestParseReporteFilterFechasInvalidas(t *testing.T) {
	e := newEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/api/reportes/pedidos?date_from=31-03-2026&format=xlsx", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	filter, format := parseReporteFilter(c)

	assert.Equal(t, "xlsx", format)
	assert.Nil(t, filter.DateFrom, "una fecha mal formada se ignora")
}
