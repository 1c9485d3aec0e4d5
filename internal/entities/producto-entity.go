package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

// Opcion es un extra con nombre y precio, tanto en el catálogo de productos
// como en las opciones adicionales de un presupuesto.
type Opcion struct {
	Nombre string   `json:"nombre"`
	Precio *float64 `json:"precio"`
}

type Producto struct {
	ID                 string   `json:"id"`
	TipoSistema        string   `json:"tipo_sistema"`
	Descripcion        *string  `json:"descripcion"`
	MedidasAlto        *float64 `json:"medidas_alto"`
	MedidasAncho       *float64 `json:"medidas_ancho"`
	MedidasProfundidad *float64 `json:"medidas_profundidad"`
	Opciones           []Opcion `json:"opciones"`
	ImagenURL          *string  `json:"imagen_url"`
	EsPlantilla        bool     `json:"es_plantilla"`

	types.BaseEntity
}
