package entities

import (
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type PedidoProveedor struct {
	ID              string  `json:"id"`
	NumeroPedido    string  `json:"numero_pedido"`
	ProveedorID     *string `json:"proveedor_id"`
	PedidoClienteID *string `json:"pedido_cliente_id"`

	Descripcion          *string    `json:"descripcion"`
	Cantidad             *int       `json:"cantidad"`
	Precio               *float64   `json:"precio"`
	Estado               string     `json:"estado"`
	FechaPedido          time.Time  `json:"fecha_pedido"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada"`
	FechaEntregaReal     *time.Time `json:"fecha_entrega_real"`
	Notas                *string    `json:"notas"`

	types.BaseEntity

	Proveedor *Proveedor `json:"proveedor,omitempty" db:"-"`
}
