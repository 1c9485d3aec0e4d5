package entities

import (
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Pedido struct {
	ID                   string     `json:"id"`
	NumeroOrden          string     `json:"numero_orden"`
	ClienteID            string     `json:"cliente_id"`
	TipoVentana          string     `json:"tipo_ventana"`
	Medidas              *string    `json:"medidas"`
	Descripcion          *string    `json:"descripcion"`
	Color                *string    `json:"color"`
	Estado               string     `json:"estado"`
	Precio               *float64   `json:"precio"`
	Urgente              bool       `json:"urgente"`
	FechaPedido          time.Time  `json:"fecha_pedido"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada"`
	Comentarios          *string    `json:"comentarios"`

	types.BaseEntity

	Cliente *Cliente `json:"cliente,omitempty" db:"-"`
}
