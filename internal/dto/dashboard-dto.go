package dto

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
)

// DashboardContadoresDTO es el bloque de contadores de la pantalla inicial.
type DashboardContadoresDTO struct {
	PedidosPendientes      uint64 `json:"pedidos_pendientes"`
	InstalacionesHoy       uint64 `json:"instalaciones_hoy"`
	VehiculosDisponibles   uint64 `json:"vehiculos_disponibles"`
	PresupuestosPendientes uint64 `json:"presupuestos_pendientes"`
	EnFabricacion          uint64 `json:"en_fabricacion"`

	PedidosRecientes []entities.Pedido `json:"pedidos_recientes"`
}
