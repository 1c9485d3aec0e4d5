package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

// Pano es un paño vidriado: cada presupuesto lleva uno o más, cada uno con
// su ancho y alto en milímetros.
type Pano struct {
	Ancho float64 `json:"ancho"`
	Alto  float64 `json:"alto"`
}

type Presupuesto struct {
	ID                  string  `json:"id"`
	ClienteID           string  `json:"cliente_id"`
	ProductoPlantillaID *string `json:"producto_plantilla_id"`

	TipoSistema   string `json:"tipo_sistema_presupuesto"`
	CantidadPanos int    `json:"cantidad_panos"`
	Medidas       []Pano `json:"medidas"`

	Materiales          *string           `json:"materiales"`
	OpcionesAdicionales []Opcion          `json:"opciones_adicionales"`
	CamposAdicionales   map[string]string `json:"campos_adicionales"`

	PrecioTotal float64 `json:"precio_total"`
	Estado      string  `json:"estado"`

	ImagenURL    *string `json:"imagen_url"`
	DocumentoURL *string `json:"documento_url"`

	Composicion          *string `json:"composicion"`
	AccesoriosIncluidos  *string `json:"accesorios_incluidos"`
	TrabajosIncluidos    *string `json:"trabajos_incluidos"`
	FormaPago            *string `json:"forma_pago"`
	TiempoEstimado       *string `json:"tiempo_estimado"`
	ValidezPresupuesto   *string `json:"validez_presupuesto"`
	Aclaraciones         *string `json:"aclaraciones"`
	IncluyeRiesgoAnclaje bool    `json:"incluye_riesgo_anclaje"`
	Garantia             *string `json:"garantia"`

	types.BaseEntity

	Cliente *Cliente `json:"cliente,omitempty" db:"-"`
}
