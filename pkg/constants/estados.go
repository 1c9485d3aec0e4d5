package constants

// Estados de pedido. Las transiciones las decide el usuario desde la UI;
// la capa de datos no impone máquina de estados.
const (
	PedidoPendiente   = "pendiente"
	PedidoEnProceso   = "en_proceso"
	PedidoFabricacion = "fabricacion"
	PedidoListo       = "listo"
	PedidoInstalado   = "instalado"
	PedidoCompletado  = "completado"
	PedidoCancelado   = "cancelado"
)

// Estados de instalación.
const (
	InstalacionProgramada = "programada"
	InstalacionEnCurso    = "en_curso"
	InstalacionCompletada = "completada"
	InstalacionCancelada  = "cancelada"
)

// Estados de pedido a proveedor.
const (
	PedidoProveedorSolicitado   = "solicitado"
	PedidoProveedorConfirmado   = "confirmado"
	PedidoProveedorEnProduccion = "en_produccion"
	PedidoProveedorListo        = "listo"
	PedidoProveedorEntregado    = "entregado"
	PedidoProveedorCancelado    = "cancelado"
)

// Estados de producción in-house.
const (
	FabricacionPendiente  = "pendiente"
	FabricacionEnProceso  = "en_proceso"
	FabricacionCompletado = "completado"
	FabricacionCancelado  = "cancelado"
)

// Estados de presupuesto.
const (
	PresupuestoPendiente = "pendiente"
	PresupuestoAprobado  = "aprobado"
	PresupuestoRechazado = "rechazado"
)
