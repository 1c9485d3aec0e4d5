package entities

import (
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

// ProductoEnFabricacion es una fila de seguimiento de producción mantenida a
// mano; no se deriva de los pedidos.
type ProductoEnFabricacion struct {
	ID                        string     `json:"id"`
	NombreProducto            string     `json:"nombre_producto"`
	Estado                    string     `json:"estado"`
	Cantidad                  int        `json:"cantidad"`
	FechaEstimadaFinalizacion *time.Time `json:"fecha_estimada_finalizacion"`
	FechaRealFinalizacion     *time.Time `json:"fecha_real_finalizacion"`

	types.BaseEntity
}
