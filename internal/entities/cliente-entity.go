package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Cliente struct {
	ID           string  `json:"id"`
	Nombre       string  `json:"nombre"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"`
	Direccion    *string `json:"direccion"`
	Ciudad       *string `json:"ciudad"`
	CodigoPostal *string `json:"codigo_postal"`

	types.BaseEntity
}
