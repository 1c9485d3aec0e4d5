package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/pdf"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/customvalidator"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

type stubPresupuestoRepo struct {
	presupuesto *entities.Presupuesto
}

func (s *stubPresupuestoRepo) GetPresupuestos(_ context.Context, _ types.Filter) ([]entities.Presupuesto, uint64, error) {
	return nil, 0, nil
}

func (s *stubPresupuestoRepo) FindPresupuesto(_ context.Context, _ string) (*entities.Presupuesto, error) {
	return s.presupuesto, nil
}

func (s *stubPresupuestoRepo) SubmitPresupuesto(_ context.Context, payload dto.CreatePresupuestoDTO) (*entities.Presupuesto, bool, error) {
	medidas := make([]entities.Pano, 0, len(payload.Medidas))
	for _, pano := range payload.Medidas {
		medidas = append(medidas, entities.Pano{Ancho: pano.Ancho, Alto: pano.Alto})
	}
	return &entities.Presupuesto{
		ID:                "3f1a2b3c-0000-4000-8000-000000000001",
		ClienteID:         "3f1a2b3c-0000-4000-8000-000000000002",
		TipoSistema:       payload.TipoSistema,
		CantidadPanos:     payload.CantidadPanos,
		Medidas:           medidas,
		CamposAdicionales: payload.CamposAdicionales,
		Estado:            "pendiente",
	}, false, nil
}

func (s *stubPresupuestoRepo) UpdatePresupuesto(_ context.Context, _ string, _ dto.UpdatePresupuestoDTO) error {
	return nil
}

func (s *stubPresupuestoRepo) SetDocumentoURL(_ context.Context, _ string, _ string) error {
	return nil
}

func (s *stubPresupuestoRepo) DeletePresupuesto(_ context.Context, _ string) error { return nil }

type stubGenerador struct{}

func (s *stubGenerador) Generar(_ string, _ map[string]string) ([]byte, error) {
	return []byte("%PDF-1.7 contenido"), nil
}

var _ pdf.GeneradorInterface = (*stubGenerador)(nil)

type stubFileStorage struct{}

func (s *stubFileStorage) Save(_ io.Reader, fileName string, prefix string) (string, error) {
	return "/uploads/" + prefix + "/" + fileName, nil
}

func (s *stubFileStorage) SaveBytes(_ []byte, fileName string, prefix string) (string, error) {
	return "/uploads/" + prefix + "/" + fileName, nil
}

func (s *stubFileStorage) Delete(_ string) error { return nil }

func presupuestoJSON() string {
	return `{
		"cliente_nombre": "Laura Méndez",
		"tipo_sistema_presupuesto": "techo",
		"cantidad_panos": 1,
		"medidas": [{"ancho": 2500, "alto": 1800}],
		"campos_adicionales": {
			"pendiente_techo": "10%",
			"tipo_vidrio": "laminado 3+3",
			"tipo_perfil": "aluminio blanco"
		},
		"precio_total": 350000
	}`
}

func newPresupuestoController(repo *stubPresupuestoRepo) *PresupuestoController {
	svc := services.NewPresupuestoService(repo, &stubGenerador{}, &stubFileStorage{}, nil, zap.NewNop())
	return NewPresupuestoController(svc, zap.NewNop())
}

func TestSubmitPresupuestoEndpoint(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos", strings.NewReader(presupuestoJSON()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.SubmitPresupuesto(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":true`)
	assert.Contains(t, rec.Body.String(), "pendiente")
}

func TestSubmitPresupuestoTipoInvalido(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	body := strings.Replace(presupuestoJSON(), `"techo"`, `"pergola"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.SubmitPresupuesto(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitPresupuestoMedidaCero(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	// Un paño de ancho cero no es una medida: el validador corta con 400
	// antes de llegar al servicio.
	body := strings.Replace(presupuestoJSON(), `"ancho": 2500`, `"ancho": 0`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.SubmitPresupuesto(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitPresupuestoMedidaNegativa(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	body := strings.Replace(presupuestoJSON(), `"alto": 1800`, `"alto": -50`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.SubmitPresupuesto(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitPresupuestoJSONInvalido(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos", strings.NewReader("{esto no es json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.SubmitPresupuesto(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerarPDFEndpoint(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	// El cuerpo es plano: el tipo de sistema más los campos del formulario.
	body := `{"tipo_sistema_presupuesto": "techo", "ancho": "1000", "largo": "1200", "cliente": "Laura"}`
	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos/generar-pdf", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.GenerarPDF(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "presupuesto-techo-")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestGenerarPDFTipoDesconocido(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	body := `{"tipo_sistema_presupuesto": "pergola", "cliente": "Laura"}`
	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos/generar-pdf", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.GenerarPDF(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pergola")
}

func TestGenerarPDFSinTipo(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/presupuestos/generar-pdf", strings.NewReader(`{"cliente": "Laura"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.GenerarPDF(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindPresupuestoIDNoUUID(t *testing.T) {
	e := newEcho(t)
	ctrl := newPresupuestoController(&stubPresupuestoRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/presupuestos/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := ctrl.FindPresupuesto(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
