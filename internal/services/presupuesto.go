package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/pdf"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/tiposistema"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/filestorage"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"go.uber.org/zap"
)

type PresupuestoService struct {
	presupuestoRepository repositories.PresupuestoRepositoryInterface
	generador             pdf.GeneradorInterface
	fileStorage           filestorage.FileStorageInterface
	cache                 repositories.CacheRepositoryInterface
	logger                *zap.Logger
}

func NewPresupuestoService(
	presupuestoRepository repositories.PresupuestoRepositoryInterface,
	generador pdf.GeneradorInterface,
	fileStorage filestorage.FileStorageInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *PresupuestoService {
	return &PresupuestoService{
		presupuestoRepository: presupuestoRepository,
		generador:             generador,
		fileStorage:           fileStorage,
		cache:                 cache,
		logger:                logger,
	}
}

func (s *PresupuestoService) GetPresupuestos(ctx context.Context, filter types.Filter) ([]entities.Presupuesto, uint64, error) {
	return s.presupuestoRepository.GetPresupuestos(ctx, filter)
}

func (s *PresupuestoService) FindPresupuesto(ctx context.Context, id string) (*entities.Presupuesto, error) {
	return s.presupuestoRepository.FindPresupuesto(ctx, id)
}

func errorTipoNoSoportado(tipo string) error {
	return apperrors.NewHttpError(
		http.StatusBadRequest,
		fmt.Sprintf("Tipo de sistema no soportado: '%s'. Tipos válidos: %s",
			tipo, strings.Join(tiposistema.Tipos(), ", ")),
		apperrors.ErrTipoSistemaNoSoportado,
		map[string]interface{}{"tipo_sistema": tipo},
	)
}

// Submit valida el formulario contra la configuración del tipo de sistema,
// persiste el presupuesto y genera su documento PDF. La resolución del
// cliente (por id o por nombre, creándolo si hace falta) ocurre dentro de la
// misma transacción que el insert del presupuesto; con la fila ya persistida
// se rellena la plantilla del tipo y se archiva el documento. Un fallo de
// generación es el error que ve el usuario.
func (s *PresupuestoService) Submit(ctx context.Context, payload dto.CreatePresupuestoDTO) (*entities.Presupuesto, error) {
	cfg, ok := tiposistema.Lookup(tiposistema.Tipo(payload.TipoSistema))
	if !ok {
		return nil, errorTipoNoSoportado(payload.TipoSistema)
	}

	if len(payload.Medidas) != payload.CantidadPanos {
		return nil, apperrors.NewInvalidInputError(
			"La cantidad de medidas (%d) no coincide con la cantidad de paños (%d)",
			len(payload.Medidas), payload.CantidadPanos,
		)
	}

	for _, campo := range cfg.CamposAdicionales {
		if valor, ok := payload.CamposAdicionales[campo]; !ok || valor == "" {
			return nil, apperrors.NewInvalidInputError("Falta el campo adicional '%s' para el tipo '%s'", campo, payload.TipoSistema)
		}
	}

	presupuesto, clienteCreado, err := s.presupuestoRepository.SubmitPresupuesto(ctx, payload)
	if err != nil {
		s.logger.Error("Error al registrar el presupuesto", zap.Error(err), zap.String("tipo_sistema", payload.TipoSistema))
		return nil, err
	}
	if clienteCreado {
		invalidarListado(ctx, s.cache, s.logger, repositories.CacheKeyClientes)
	}
	s.logger.Info("Presupuesto registrado",
		zap.String("id", presupuesto.ID),
		zap.String("cliente_id", presupuesto.ClienteID),
		zap.String("tipo_sistema", presupuesto.TipoSistema),
	)

	clienteNombre := payload.ClienteNombre
	if clienteNombre == "" {
		if completo, err := s.presupuestoRepository.FindPresupuesto(ctx, presupuesto.ID); err == nil && completo.Cliente != nil {
			presupuesto = completo
			clienteNombre = completo.Cliente.Nombre
		}
	}

	campos := BuildCamposPDF(presupuesto, clienteNombre, cfg)
	documento, err := s.generador.Generar(cfg.ArchivoPlantilla, campos)
	if err != nil {
		s.logger.Error("Error al generar el documento del presupuesto",
			zap.Error(err),
			zap.String("presupuesto_id", presupuesto.ID),
			zap.String("plantilla", cfg.ArchivoPlantilla),
		)
		return nil, apperrors.NewHttpError(
			http.StatusInternalServerError,
			"El presupuesto se registró pero no se pudo generar el documento",
			err,
			map[string]interface{}{"presupuesto_id": presupuesto.ID},
		)
	}
	s.archivarDocumento(ctx, presupuesto, documento)

	return presupuesto, nil
}

// archivarDocumento guarda el PDF generado y deja su URL en documento_url.
// Los fallos solo se loguean: el presupuesto ya está registrado y el
// documento puede regenerarse.
func (s *PresupuestoService) archivarDocumento(ctx context.Context, presupuesto *entities.Presupuesto, documento []byte) {
	nombreArchivo := fmt.Sprintf("presupuesto-%s.pdf", presupuesto.ID)
	url, err := s.fileStorage.SaveBytes(documento, nombreArchivo, "presupuestos")
	if err != nil {
		s.logger.Warn("No se pudo archivar el PDF generado", zap.Error(err), zap.String("presupuesto_id", presupuesto.ID))
		return
	}
	if err := s.presupuestoRepository.SetDocumentoURL(ctx, presupuesto.ID, url); err != nil {
		s.logger.Warn("No se pudo registrar documento_url", zap.Error(err), zap.String("presupuesto_id", presupuesto.ID))
		return
	}
	presupuesto.DocumentoURL = &url
}

func (s *PresupuestoService) Update(ctx context.Context, id string, payload dto.UpdatePresupuestoDTO) (*entities.Presupuesto, error) {
	if payload.CantidadPanos != nil {
		if payload.Medidas == nil {
			// Cambiar la cantidad de paños sin mandar medidas regenera la
			// lista: N entradas vacías, se descartan los valores anteriores.
			payload.Medidas = dto.MedidasVacias(*payload.CantidadPanos)
		} else if len(payload.Medidas) != *payload.CantidadPanos {
			return nil, apperrors.NewInvalidInputError(
				"La cantidad de medidas (%d) no coincide con la cantidad de paños (%d)",
				len(payload.Medidas), *payload.CantidadPanos,
			)
		}
	}
	if err := s.presupuestoRepository.UpdatePresupuesto(ctx, id, payload); err != nil {
		s.logger.Error("Error al actualizar el presupuesto", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	return s.presupuestoRepository.FindPresupuesto(ctx, id)
}

func (s *PresupuestoService) Delete(ctx context.Context, id string) error {
	if err := s.presupuestoRepository.DeletePresupuesto(ctx, id); err != nil {
		s.logger.Error("Error al eliminar el presupuesto", zap.Error(err), zap.String("id", id))
		return err
	}
	s.logger.Info("Presupuesto eliminado", zap.String("id", id))
	return nil
}

// BuildCamposPDF arma el mapa nombre-de-campo -> valor para la plantilla del
// tipo de sistema. Las claves internas del formulario se traducen con
// CamposEnPDF; los datos de los paños van como "ancho x alto" más un resumen
// por paño.
func BuildCamposPDF(p *entities.Presupuesto, clienteNombre string, cfg tiposistema.Config) map[string]string {
	campos := map[string]string{
		"cliente": clienteNombre,
		"sistema": cfg.NombreParaPDF,
		"fecha":   p.CreatedAt.Format("02/01/2006"),
		"total":   fmt.Sprintf("$%.2f", p.PrecioTotal),
	}

	if len(p.Medidas) > 0 {
		primero := p.Medidas[0]
		if destino, ok := cfg.CamposEnPDF["medidas_ancho"]; ok {
			campos[destino] = formatoMedida(primero.Ancho)
		}
		if destino, ok := cfg.CamposEnPDF["medidas_alto"]; ok {
			campos[destino] = formatoMedida(primero.Alto)
		}

		resumen := make([]string, 0, len(p.Medidas))
		for i, pano := range p.Medidas {
			resumen = append(resumen, fmt.Sprintf("Paño %d: %s x %s", i+1, formatoMedida(pano.Ancho), formatoMedida(pano.Alto)))
		}
		campos["detalle_panos"] = strings.Join(resumen, " | ")
	}

	for clave, valor := range p.CamposAdicionales {
		destino, ok := cfg.CamposEnPDF[clave]
		if !ok {
			// Sin traducción el campo no existe en la plantilla; se pasa con
			// su clave interna y el generador lo descartará con un aviso.
			destino = clave
		}
		campos[destino] = valor
	}

	if p.Materiales != nil {
		campos["materiales"] = *p.Materiales
	}
	if p.Garantia != nil {
		campos["garantia"] = *p.Garantia
	}
	if p.FormaPago != nil {
		campos["forma_pago"] = *p.FormaPago
	}
	if p.ValidezPresupuesto != nil {
		campos["validez"] = *p.ValidezPresupuesto
	}
	return campos
}

func formatoMedida(mm float64) string {
	if mm == float64(int64(mm)) {
		return fmt.Sprintf("%d mm", int64(mm))
	}
	return fmt.Sprintf("%.1f mm", mm)
}

// GenerarDocumento rellena la plantilla del tipo de sistema con un mapa plano
// de campos, sin tocar la base: es el respaldo del botón de descarga del
// formulario. Las claves internas conocidas se traducen con CamposEnPDF; el
// resto se pasa tal cual (pueden venir ya con el nombre del campo en la
// plantilla). Devuelve los bytes del PDF y el nombre de archivo sugerido.
func (s *PresupuestoService) GenerarDocumento(ctx context.Context, tipo string, campos map[string]string) ([]byte, string, error) {
	cfg, ok := tiposistema.Lookup(tiposistema.Tipo(tipo))
	if !ok {
		return nil, "", errorTipoNoSoportado(tipo)
	}

	traducidos := make(map[string]string, len(campos))
	for clave, valor := range campos {
		if destino, ok := cfg.CamposEnPDF[clave]; ok {
			traducidos[destino] = valor
		} else {
			traducidos[clave] = valor
		}
	}

	documento, err := s.generador.Generar(cfg.ArchivoPlantilla, traducidos)
	if err != nil {
		s.logger.Error("Error al generar el PDF",
			zap.Error(err),
			zap.String("tipo_sistema", tipo),
			zap.String("plantilla", cfg.ArchivoPlantilla),
		)
		return nil, "", apperrors.NewHttpError(
			http.StatusInternalServerError,
			"No se pudo generar el documento del presupuesto",
			err,
			map[string]interface{}{"tipo_sistema": tipo},
		)
	}

	nombreArchivo := fmt.Sprintf("presupuesto-%s-%s.pdf", tipo, time.Now().Format("2006-01-02"))
	return documento, nombreArchivo, nil
}
