package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/tiposistema"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePresupuestoRepo struct {
	presupuesto   *entities.Presupuesto
	findErr       error
	submitErr     error
	clienteCreado bool

	submitCalls   int
	ultimoUpdate  *dto.UpdatePresupuestoDTO
	docURL        string
	docErr        error
}

func (f *fakePresupuestoRepo) GetPresupuestos(_ context.Context, _ types.Filter) ([]entities.Presupuesto, uint64, error) {
	if f.presupuesto == nil {
		return nil, 0, nil
	}
	return []entities.Presupuesto{*f.presupuesto}, 1, nil
}

func (f *fakePresupuestoRepo) FindPresupuesto(_ context.Context, _ string) (*entities.Presupuesto, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.presupuesto, nil
}

func (f *fakePresupuestoRepo) SubmitPresupuesto(_ context.Context, payload dto.CreatePresupuestoDTO) (*entities.Presupuesto, bool, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return nil, false, f.submitErr
	}
	medidas := make([]entities.Pano, 0, len(payload.Medidas))
	for _, pano := range payload.Medidas {
		medidas = append(medidas, entities.Pano{Ancho: pano.Ancho, Alto: pano.Alto})
	}
	p := &entities.Presupuesto{
		ID:                "p-1",
		ClienteID:         "c-1",
		TipoSistema:       payload.TipoSistema,
		CantidadPanos:     payload.CantidadPanos,
		Medidas:           medidas,
		CamposAdicionales: payload.CamposAdicionales,
		PrecioTotal:       payload.PrecioTotal,
		Estado:            "pendiente",
	}
	return p, f.clienteCreado, nil
}

func (f *fakePresupuestoRepo) UpdatePresupuesto(_ context.Context, _ string, payload dto.UpdatePresupuestoDTO) error {
	f.ultimoUpdate = &payload
	return nil
}

func (f *fakePresupuestoRepo) SetDocumentoURL(_ context.Context, _ string, url string) error {
	if f.docErr != nil {
		return f.docErr
	}
	f.docURL = url
	return nil
}

func (f *fakePresupuestoRepo) DeletePresupuesto(_ context.Context, _ string) error { return nil }

type fakeGenerador struct {
	documento []byte
	err       error

	plantilla string
	campos    map[string]string
	llamadas  int
}

func (f *fakeGenerador) Generar(nombrePlantilla string, campos map[string]string) ([]byte, error) {
	f.llamadas++
	f.plantilla = nombrePlantilla
	f.campos = campos
	if f.err != nil {
		return nil, f.err
	}
	return f.documento, nil
}

type fakeFileStorage struct {
	saveErr error
	saved   string
}

func (f *fakeFileStorage) Save(_ io.Reader, fileName string, prefix string) (string, error) {
	return f.SaveBytes(nil, fileName, prefix)
}

func (f *fakeFileStorage) SaveBytes(_ []byte, fileName string, prefix string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = "/uploads/" + prefix + "/" + fileName
	return f.saved, nil
}

func (f *fakeFileStorage) Delete(_ string) error { return nil }

func payloadTecho() dto.CreatePresupuestoDTO {
	return dto.CreatePresupuestoDTO{
		ClienteNombre: "Laura Méndez",
		TipoSistema:   "techo",
		CantidadPanos: 1,
		Medidas:       []dto.PanoDTO{{Ancho: 2500, Alto: 1800}},
		CamposAdicionales: map[string]string{
			"pendiente_techo": "10%",
			"tipo_vidrio":     "laminado 3+3",
			"tipo_perfil":     "aluminio blanco",
		},
		PrecioTotal: 350000,
	}
}

func newPresupuestoService(repo *fakePresupuestoRepo, gen *fakeGenerador, fs *fakeFileStorage, cache repositories.CacheRepositoryInterface) *PresupuestoService {
	if gen.documento == nil && gen.err == nil {
		gen.documento = []byte("%PDF-1.7")
	}
	return NewPresupuestoService(repo, gen, fs, cache, zap.NewNop())
}

func TestSubmitTipoDesconocido(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	gen := &fakeGenerador{}
	svc := newPresupuestoService(repo, gen, &fakeFileStorage{}, nil)

	payload := payloadTecho()
	payload.TipoSistema = "pergola"

	_, err := svc.Submit(context.Background(), payload)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrTipoSistemaNoSoportado)
	assert.Contains(t, httpErr.Message, "pergola")
	assert.Contains(t, httpErr.Message, "techo", "el mensaje debe enumerar los tipos válidos")
	assert.Zero(t, repo.submitCalls, "no debe llegar al repositorio")
	assert.Zero(t, gen.llamadas, "no debe intentar rellenar ninguna plantilla")
}

func TestSubmitMedidasNoCoinciden(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, nil)

	payload := payloadTecho()
	payload.CantidadPanos = 3

	_, err := svc.Submit(context.Background(), payload)

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, repo.submitCalls)
}

func TestSubmitFaltaCampoAdicional(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, nil)

	payload := payloadTecho()
	delete(payload.CamposAdicionales, "tipo_vidrio")

	_, err := svc.Submit(context.Background(), payload)

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "tipo_vidrio")

	// Presente pero vacío también bloquea.
	payload = payloadTecho()
	payload.CamposAdicionales["tipo_vidrio"] = ""
	_, err = svc.Submit(context.Background(), payload)
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, repo.submitCalls)
}

func TestSubmitPersisteYGeneraDocumento(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	gen := &fakeGenerador{}
	svc := newPresupuestoService(repo, gen, &fakeFileStorage{}, nil)

	presupuesto, err := svc.Submit(context.Background(), payloadTecho())

	require.NoError(t, err)
	require.NotNil(t, presupuesto)
	assert.Equal(t, 1, repo.submitCalls)
	assert.Equal(t, "pendiente", presupuesto.Estado)

	// El envío dispara la generación del PDF con los campos traducidos.
	assert.Equal(t, 1, gen.llamadas)
	assert.Equal(t, "Techo.pdf", gen.plantilla)
	assert.Equal(t, "Laura Méndez", gen.campos["cliente"])
	assert.Equal(t, "2500 mm", gen.campos["ancho"])
	assert.Equal(t, "1800 mm", gen.campos["largo"])
	assert.Equal(t, "10%", gen.campos["pendiente"])

	// El documento generado queda archivado y registrado.
	assert.Equal(t, "/uploads/presupuestos/presupuesto-p-1.pdf", repo.docURL)
	require.NotNil(t, presupuesto.DocumentoURL)
}

func TestSubmitErrorDeGeneracion(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	gen := &fakeGenerador{err: errors.New("plantilla corrupta")}
	svc := newPresupuestoService(repo, gen, &fakeFileStorage{}, nil)

	_, err := svc.Submit(context.Background(), payloadTecho())

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, 1, repo.submitCalls, "la fila ya estaba persistida cuando falló la generación")
}

func TestSubmitArchivadoFallaNoBloquea(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	gen := &fakeGenerador{}
	svc := newPresupuestoService(repo, gen, &fakeFileStorage{saveErr: errors.New("disco lleno")}, nil)

	presupuesto, err := svc.Submit(context.Background(), payloadTecho())

	// El archivado fallido solo se loguea; el presupuesto queda registrado.
	require.NoError(t, err)
	require.NotNil(t, presupuesto)
	assert.Empty(t, repo.docURL)
	assert.Nil(t, presupuesto.DocumentoURL)
}

func TestSubmitClienteNuevoInvalidaListado(t *testing.T) {
	repo := &fakePresupuestoRepo{clienteCreado: true}
	cache := &fakeCache{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, cache)

	_, err := svc.Submit(context.Background(), payloadTecho())

	require.NoError(t, err)
	assert.Contains(t, cache.borradas, repositories.CacheKeyClientes)
}

func TestSubmitClienteExistenteNoInvalida(t *testing.T) {
	repo := &fakePresupuestoRepo{clienteCreado: false}
	cache := &fakeCache{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, cache)

	_, err := svc.Submit(context.Background(), payloadTecho())

	require.NoError(t, err)
	assert.Empty(t, cache.borradas)
}

func TestSubmitDosVecesCreaDosPresupuestos(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, nil)

	// No hay deduplicación: el mismo formulario enviado dos veces son dos
	// presupuestos.
	for i := 0; i < 2; i++ {
		_, err := svc.Submit(context.Background(), payloadTecho())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repo.submitCalls)
}

func TestUpdateMedidasNoCoinciden(t *testing.T) {
	svc := newPresupuestoService(&fakePresupuestoRepo{}, &fakeGenerador{}, &fakeFileStorage{}, nil)

	dos := 2
	_, err := svc.Update(context.Background(), "p-1", dto.UpdatePresupuestoDTO{
		CantidadPanos: &dos,
		Medidas:       []dto.PanoDTO{{Ancho: 1000, Alto: 1000}},
	})

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestUpdateCantidadPanosRegeneraMedidas(t *testing.T) {
	repo := &fakePresupuestoRepo{}
	svc := newPresupuestoService(repo, &fakeGenerador{}, &fakeFileStorage{}, nil)

	// Cambiar solo la cantidad de paños regenera la lista de medidas con N
	// entradas vacías.
	tres := 3
	_, err := svc.Update(context.Background(), "p-1", dto.UpdatePresupuestoDTO{CantidadPanos: &tres})

	require.NoError(t, err)
	require.NotNil(t, repo.ultimoUpdate)
	require.Len(t, repo.ultimoUpdate.Medidas, 3)
	for _, pano := range repo.ultimoUpdate.Medidas {
		assert.Zero(t, pano.Ancho)
		assert.Zero(t, pano.Alto)
	}
}

func presupuestoTecho() *entities.Presupuesto {
	materiales := "Aluminio y vidrio laminado"
	garantia := "12 meses"
	p := &entities.Presupuesto{
		ID:            "p-1",
		ClienteID:     "c-1",
		TipoSistema:   "techo",
		CantidadPanos: 1,
		Medidas:       []entities.Pano{{Ancho: 2500, Alto: 1800}},
		CamposAdicionales: map[string]string{
			"pendiente_techo": "10%",
			"tipo_vidrio":     "laminado 3+3",
			"tipo_perfil":     "aluminio blanco",
		},
		PrecioTotal: 350000,
		Estado:      "pendiente",
		Materiales:  &materiales,
		Garantia:    &garantia,
		Cliente:     &entities.Cliente{ID: "c-1", Nombre: "Laura Méndez"},
	}
	p.CreatedAt = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return p
}

func TestBuildCamposPDF(t *testing.T) {
	p := presupuestoTecho()
	cfg, ok := tiposistema.Lookup(tiposistema.Techo)
	require.True(t, ok)

	campos := BuildCamposPDF(p, "Laura Méndez", cfg)

	assert.Equal(t, "Laura Méndez", campos["cliente"])
	assert.Equal(t, "Techo Vidriado", campos["sistema"])
	assert.Equal(t, "15/03/2026", campos["fecha"])
	assert.Equal(t, "$350000.00", campos["total"])

	// Las medidas del primer paño se vuelcan con los nombres de la plantilla.
	assert.Equal(t, "2500 mm", campos["ancho"])
	assert.Equal(t, "1800 mm", campos["largo"])

	// El resumen por paño se arma también con un solo paño.
	assert.Equal(t, "Paño 1: 2500 mm x 1800 mm", campos["detalle_panos"])

	// Los campos adicionales llegan traducidos.
	assert.Equal(t, "10%", campos["pendiente"])
	assert.Equal(t, "laminado 3+3", campos["vidrio"])
	assert.Equal(t, "aluminio blanco", campos["perfil"])

	assert.Equal(t, "Aluminio y vidrio laminado", campos["materiales"])
	assert.Equal(t, "12 meses", campos["garantia"])
}

func TestBuildCamposPDFMultiplesPanos(t *testing.T) {
	p := presupuestoTecho()
	p.Medidas = []entities.Pano{{Ancho: 2500, Alto: 1800}, {Ancho: 1200.5, Alto: 900}}
	cfg, _ := tiposistema.Lookup(tiposistema.Techo)

	campos := BuildCamposPDF(p, "Laura Méndez", cfg)

	assert.Equal(t, "2500 mm", campos["ancho"], "las medidas principales siguen siendo las del primer paño")
	assert.Equal(t, "Paño 1: 2500 mm x 1800 mm | Paño 2: 1200.5 mm x 900 mm", campos["detalle_panos"])
}

func TestBuildCamposPDFCampoSinTraduccion(t *testing.T) {
	p := presupuestoTecho()
	p.CamposAdicionales["nota_interna"] = "llamar antes de ir"
	cfg, _ := tiposistema.Lookup(tiposistema.Techo)

	campos := BuildCamposPDF(p, "Laura Méndez", cfg)

	// Sin traducción la clave interna pasa tal cual; el generador la
	// descartará al no existir en la plantilla.
	assert.Equal(t, "llamar antes de ir", campos["nota_interna"])
}

func TestFormatoMedida(t *testing.T) {
	assert.Equal(t, "2500 mm", formatoMedida(2500))
	assert.Equal(t, "1200.5 mm", formatoMedida(1200.5))
}

func TestGenerarDocumentoTipoNoSoportado(t *testing.T) {
	gen := &fakeGenerador{}
	svc := newPresupuestoService(&fakePresupuestoRepo{}, gen, &fakeFileStorage{}, nil)

	_, _, err := svc.GenerarDocumento(context.Background(), "obsoleto", map[string]string{"cliente": "Laura"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrTipoSistemaNoSoportado)
	assert.Zero(t, gen.llamadas, "no debe intentar rellenar ninguna plantilla")
}

func TestGenerarDocumentoTraduceYPasaCampos(t *testing.T) {
	gen := &fakeGenerador{}
	svc := newPresupuestoService(&fakePresupuestoRepo{}, gen, &fakeFileStorage{}, nil)

	documento, nombre, err := svc.GenerarDocumento(context.Background(), "techo", map[string]string{
		"pendiente_techo": "10%",
		"ancho":           "1000",
		"largo":           "1200",
		"cliente":         "Laura",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), documento)
	assert.Contains(t, nombre, "presupuesto-techo-")
	assert.Equal(t, "Techo.pdf", gen.plantilla)

	// La clave interna conocida se traduce; las demás pasan tal cual.
	assert.Equal(t, "10%", gen.campos["pendiente"])
	assert.Equal(t, "1000", gen.campos["ancho"])
	assert.Equal(t, "1200", gen.campos["largo"])
	assert.Equal(t, "Laura", gen.campos["cliente"])
}

func TestGenerarDocumentoErrorGenerador(t *testing.T) {
	gen := &fakeGenerador{err: errors.New("plantilla corrupta")}
	svc := newPresupuestoService(&fakePresupuestoRepo{}, gen, &fakeFileStorage{}, nil)

	_, _, err := svc.GenerarDocumento(context.Background(), "techo", map[string]string{"cliente": "Laura"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}
