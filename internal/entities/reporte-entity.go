package entities

import "time"

type ReporteFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Estados  []string
	Urgentes *bool

	Page    int
	PerPage int
}

// ReporteItem es una fila del reporte de pedidos: el pedido con su cliente y
// los días que lleva abierto.
type ReporteItem struct {
	NumeroOrden          string     `json:"numero_orden"`
	ClienteNombre        string     `json:"cliente_nombre"`
	TipoVentana          string     `json:"tipo_ventana"`
	Estado               string     `json:"estado"`
	Precio               *float64   `json:"precio"`
	Urgente              bool       `json:"urgente"`
	FechaPedido          time.Time  `json:"fecha_pedido"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada"`
	DiasAbierto          int        `json:"dias_abierto"`
}

// ReporteResumen acompaña al listado con totales por estado y facturación.
type ReporteResumen struct {
	TotalPedidos         uint64             `json:"total_pedidos"`
	TotalFacturado       float64            `json:"total_facturado"`
	PedidosUrgentes      uint64             `json:"pedidos_urgentes"`
	CuentaPorEstado      map[string]uint64  `json:"cuenta_por_estado"`
	MontoPorEstado       map[string]float64 `json:"monto_por_estado"`
	PresupuestosAbiertos uint64             `json:"presupuestos_abiertos"`
}
