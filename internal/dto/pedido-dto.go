package dto

import "time"

type CreatePedidoDTO struct {
	NumeroOrden          string     `json:"numero_orden" validate:"required"`
	ClienteID            string     `json:"cliente_id" validate:"required,uuid4"`
	TipoVentana          string     `json:"tipo_ventana" validate:"required"`
	Medidas              *string    `json:"medidas" validate:"omitempty"`
	Descripcion          *string    `json:"descripcion" validate:"omitempty"`
	Color                *string    `json:"color" validate:"omitempty"`
	Precio               *float64   `json:"precio" validate:"omitempty,gt=0"`
	Urgente              bool       `json:"urgente"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada" validate:"omitempty"`
	Comentarios          *string    `json:"comentarios" validate:"omitempty"`
}

type UpdatePedidoDTO struct {
	NumeroOrden          *string    `json:"numero_orden,omitempty" validate:"omitempty,min=1"`
	TipoVentana          *string    `json:"tipo_ventana,omitempty" validate:"omitempty,min=1"`
	Medidas              *string    `json:"medidas,omitempty" validate:"omitempty"`
	Descripcion          *string    `json:"descripcion,omitempty" validate:"omitempty"`
	Color                *string    `json:"color,omitempty" validate:"omitempty"`
	Estado               *string    `json:"estado,omitempty" validate:"omitempty,oneof=pendiente en_proceso fabricacion listo instalado completado cancelado"`
	Precio               *float64   `json:"precio,omitempty" validate:"omitempty,gt=0"`
	Urgente              *bool      `json:"urgente,omitempty"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada,omitempty" validate:"omitempty"`
	Comentarios          *string    `json:"comentarios,omitempty" validate:"omitempty"`
}
