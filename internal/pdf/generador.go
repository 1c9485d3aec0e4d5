// Package pdf rellena las plantillas PDF de presupuestos. Cada tipo de
// sistema tiene una plantilla fija con campos de formulario nombrados; acá se
// cargan esos campos con los valores del presupuesto y se bloquea el
// formulario para que el documento final no sea editable.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

type GeneradorInterface interface {
	Generar(nombrePlantilla string, campos map[string]string) ([]byte, error)
}

type Generador struct {
	dirPlantillas string
	logger        *zap.Logger
}

func NewGenerador(dirPlantillas string, logger *zap.Logger) *Generador {
	return &Generador{dirPlantillas: dirPlantillas, logger: logger}
}

// Generar carga la plantilla, escribe cada campo del mapa en el campo de
// formulario homónimo y bloquea el formulario. Un campo del mapa que no
// existe en la plantilla se loguea y se omite; un campo de la plantilla sin
// valor en el mapa queda con su valor por defecto.
func (g *Generador) Generar(nombrePlantilla string, campos map[string]string) ([]byte, error) {
	ruta := filepath.Join(g.dirPlantillas, nombrePlantilla)
	plantilla, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la plantilla %q: %w", nombrePlantilla, err)
	}

	conf := model.NewDefaultConfiguration()

	var formJSON bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(plantilla), &formJSON, nombrePlantilla, conf); err != nil {
		return nil, fmt.Errorf("no se pudo exportar el formulario de %q: %w", nombrePlantilla, err)
	}

	relleno, omitidos, err := mergeCampos(formJSON.Bytes(), campos)
	if err != nil {
		return nil, fmt.Errorf("no se pudo armar el formulario de %q: %w", nombrePlantilla, err)
	}
	for _, campo := range omitidos {
		g.logger.Warn("campo no encontrado en la plantilla PDF, se omite",
			zap.String("campo", campo),
			zap.String("plantilla", nombrePlantilla),
		)
	}

	var conCampos bytes.Buffer
	if err := api.FillForm(bytes.NewReader(plantilla), bytes.NewReader(relleno), &conCampos, conf); err != nil {
		return nil, fmt.Errorf("no se pudo rellenar la plantilla %q: %w", nombrePlantilla, err)
	}

	// nil = bloquear todos los campos.
	var final bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(conCampos.Bytes()), &final, nil, conf); err != nil {
		return nil, fmt.Errorf("no se pudo bloquear el formulario de %q: %w", nombrePlantilla, err)
	}

	return final.Bytes(), nil
}
