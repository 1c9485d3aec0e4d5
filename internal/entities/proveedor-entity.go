package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Proveedor struct {
	ID           string  `json:"id"`
	Nombre       string  `json:"nombre"`
	Contacto     *string `json:"contacto"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"`
	Direccion    *string `json:"direccion"`
	Especialidad *string `json:"especialidad"`
	Activo       bool    `json:"activo"`

	types.BaseEntity
}
