package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Vehiculo struct {
	ID        string `json:"id"`
	Matricula string `json:"matricula"`
	Modelo    string `json:"modelo"`
	// Disponible lo muta el flujo de asignación, no se recalcula desde las
	// instalaciones.
	Disponible      bool    `json:"disponible"`
	UbicacionActual *string `json:"ubicacion_actual"`
	ConductorID     *string `json:"conductor_id"`

	types.BaseEntity

	Conductor *Instalador `json:"conductor,omitempty" db:"-"`
}
