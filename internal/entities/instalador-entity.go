package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

// Instalador nunca se borra físicamente, solo se desactiva.
type Instalador struct {
	ID           string  `json:"id"`
	Nombre       string  `json:"nombre"`
	Usuario      *string `json:"usuario"`
	PasswordHash *string `json:"-"`
	Email        *string `json:"email"`
	Telefono     *string `json:"telefono"`
	Especialidad *string `json:"especialidad"`
	Activo       bool    `json:"activo"`

	types.BaseEntity
}
