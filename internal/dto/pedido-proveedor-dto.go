package dto

import "time"

type CreatePedidoProveedorDTO struct {
	NumeroPedido    string  `json:"numero_pedido" validate:"required"`
	ProveedorID     *string `json:"proveedor_id" validate:"omitempty,uuid4"`
	PedidoClienteID *string `json:"pedido_cliente_id" validate:"omitempty,uuid4"`

	Descripcion          *string    `json:"descripcion" validate:"omitempty"`
	Cantidad             *int       `json:"cantidad" validate:"omitempty,gt=0"`
	Precio               *float64   `json:"precio" validate:"omitempty,gt=0"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada" validate:"omitempty"`
	Notas                *string    `json:"notas" validate:"omitempty"`
}

type UpdatePedidoProveedorDTO struct {
	NumeroPedido    *string `json:"numero_pedido,omitempty" validate:"omitempty,min=1"`
	ProveedorID     *string `json:"proveedor_id,omitempty" validate:"omitempty,uuid4"`
	PedidoClienteID *string `json:"pedido_cliente_id,omitempty" validate:"omitempty,uuid4"`

	Descripcion          *string    `json:"descripcion,omitempty" validate:"omitempty"`
	Cantidad             *int       `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	Precio               *float64   `json:"precio,omitempty" validate:"omitempty,gt=0"`
	Estado               *string    `json:"estado,omitempty" validate:"omitempty,oneof=solicitado confirmado en_produccion listo entregado cancelado"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada,omitempty" validate:"omitempty"`
	FechaEntregaReal     *time.Time `json:"fecha_entrega_real,omitempty" validate:"omitempty"`
	Notas                *string    `json:"notas,omitempty" validate:"omitempty"`
}
