package dto

import "time"

type CreateInstalacionDTO struct {
	Codigo       string  `json:"codigo" validate:"required"`
	PedidoID     *string `json:"pedido_id" validate:"omitempty,uuid4"`
	InstaladorID *string `json:"instalador_id" validate:"omitempty,uuid4"`
	VehiculoID   *string `json:"vehiculo_id" validate:"omitempty,uuid4"`

	Fecha      time.Time `json:"fecha" validate:"required"`
	HoraInicio *string   `json:"hora_inicio" validate:"omitempty,hora"`
	HoraFin    *string   `json:"hora_fin" validate:"omitempty,hora"`

	HerramientasRequeridas []string `json:"herramientas_requeridas" validate:"omitempty"`
	Comentarios            *string  `json:"comentarios" validate:"omitempty"`
	PlanosURL              *string  `json:"planos_url" validate:"omitempty"`
}

type UpdateInstalacionDTO struct {
	Codigo       *string `json:"codigo,omitempty" validate:"omitempty,min=1"`
	PedidoID     *string `json:"pedido_id,omitempty" validate:"omitempty,uuid4"`
	InstaladorID *string `json:"instalador_id,omitempty" validate:"omitempty,uuid4"`

	Fecha      *time.Time `json:"fecha,omitempty" validate:"omitempty"`
	HoraInicio *string    `json:"hora_inicio,omitempty" validate:"omitempty,hora"`
	HoraFin    *string    `json:"hora_fin,omitempty" validate:"omitempty,hora"`

	HerramientasRequeridas []string `json:"herramientas_requeridas,omitempty" validate:"omitempty"`
	Estado                 *string  `json:"estado,omitempty" validate:"omitempty,oneof=programada en_curso completada cancelada"`
	Comentarios            *string  `json:"comentarios,omitempty" validate:"omitempty"`
	PlanosURL              *string  `json:"planos_url,omitempty" validate:"omitempty"`
	FirmaCliente           *string  `json:"firma_cliente,omitempty" validate:"omitempty"`
}

// AsignarVehiculoDTO es el cuerpo de POST /instalaciones/:id/vehiculo.
type AsignarVehiculoDTO struct {
	VehiculoID string `json:"vehiculo_id" validate:"required,uuid4"`
}
