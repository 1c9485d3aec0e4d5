// Package tiposistema define el conjunto cerrado de tipos de sistema que la
// empresa cotiza y, para cada uno, los campos extra que pide el formulario,
// la plantilla PDF a rellenar y la traducción de claves internas a los
// nombres de campo dentro del PDF.
//
// El conjunto es fijo en tiempo de compilación; no hay registro en runtime.
// Un tipo desconocido debe tratarse como error duro: sin configuración no hay
// plantilla que rellenar.
package tiposistema

type Tipo string

const (
	Techo           Tipo = "techo"
	BarandaPostes   Tipo = "baranda_postes"
	BarandaClick    Tipo = "baranda_click"
	Cerramiento     Tipo = "cerramiento"
	BarandaEscalera Tipo = "baranda_escalera"
	BarandaBalcon   Tipo = "baranda_balcon"
)

type Config struct {
	NombreParaPDF     string
	ArchivoPlantilla  string
	CamposAdicionales []string
	// CamposEnPDF traduce la clave interna del formulario al nombre del
	// campo con ese dato en la plantilla.
	CamposEnPDF map[string]string
}

var configs = map[Tipo]Config{
	Techo: {
		NombreParaPDF:     "Techo Vidriado",
		ArchivoPlantilla:  "Techo.pdf",
		CamposAdicionales: []string{"pendiente_techo", "tipo_vidrio", "tipo_perfil"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":   "ancho",
			"medidas_alto":    "largo",
			"pendiente_techo": "pendiente",
			"tipo_vidrio":     "vidrio",
			"tipo_perfil":     "perfil",
		},
	},
	BarandaPostes: {
		NombreParaPDF:     "Baranda con Postes",
		ArchivoPlantilla:  "Baranda Sistema Postes.pdf",
		CamposAdicionales: []string{"altura_baranda", "ubicacion"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":  "largo_baranda",
			"altura_baranda": "altura",
			"ubicacion":      "ubicacion",
		},
	},
	BarandaClick: {
		NombreParaPDF:     "Baranda Sistema Click",
		ArchivoPlantilla:  "Baranda Sistema Click.pdf",
		CamposAdicionales: []string{"altura_baranda", "color_perfil"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":  "longitud",
			"altura_baranda": "altura",
			"color_perfil":   "color",
		},
	},
	Cerramiento: {
		NombreParaPDF:     "Cerramiento Vidriado",
		ArchivoPlantilla:  "Cerramiento.pdf",
		CamposAdicionales: []string{"cantidad_paneles", "color_vidrio"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":    "ancho",
			"medidas_alto":     "alto",
			"cantidad_paneles": "paneles",
			"color_vidrio":     "color_vidrio",
		},
	},
	BarandaEscalera: {
		NombreParaPDF:     "Baranda Escalera",
		ArchivoPlantilla:  "Baranda Escalera.pdf",
		CamposAdicionales: []string{"altura_baranda", "inclinacion"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":  "longitud",
			"altura_baranda": "altura",
			"inclinacion":    "inclinacion",
		},
	},
	BarandaBalcon: {
		NombreParaPDF:     "Baranda Balcón",
		ArchivoPlantilla:  "Baranda Balcon.pdf",
		CamposAdicionales: []string{"altura_baranda", "tipo_vidrio"},
		CamposEnPDF: map[string]string{
			"medidas_ancho":  "longitud",
			"altura_baranda": "altura",
			"tipo_vidrio":    "vidrio",
		},
	},
}

// Lookup devuelve la configuración del tipo, o ok=false si no existe.
func Lookup(t Tipo) (Config, bool) {
	cfg, ok := configs[t]
	return cfg, ok
}

func EsValido(s string) bool {
	_, ok := configs[Tipo(s)]
	return ok
}

// Tipos devuelve los identificadores soportados, para mensajes de error.
func Tipos() []string {
	out := make([]string, 0, len(configs))
	for t := range configs {
		out = append(out, string(t))
	}
	return out
}
