package entities

import (
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Instalacion struct {
	ID           string  `json:"id"`
	Codigo       string  `json:"codigo"`
	PedidoID     *string `json:"pedido_id"`
	InstaladorID *string `json:"instalador_id"`
	// A lo sumo un vehículo asignado a la vez; reasignar libera el anterior.
	VehiculoID *string `json:"vehiculo_id"`

	Fecha      time.Time `json:"fecha"`
	HoraInicio *string   `json:"hora_inicio"`
	HoraFin    *string   `json:"hora_fin"`

	// Lista libre de herramientas, no consume stock de la tabla herramientas.
	HerramientasRequeridas []string `json:"herramientas_requeridas"`

	Estado       string  `json:"estado"`
	Comentarios  *string `json:"comentarios"`
	PlanosURL    *string `json:"planos_url"`
	FirmaCliente *string `json:"firma_cliente"`

	types.BaseEntity

	Instalador *Instalador `json:"instalador,omitempty" db:"-"`
	Vehiculo   *Vehiculo   `json:"vehiculo,omitempty" db:"-"`
	Pedido     *Pedido     `json:"pedido,omitempty" db:"-"`
}
