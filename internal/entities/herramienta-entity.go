package entities

import (
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"
)

type Herramienta struct {
	ID                 string  `json:"id"`
	Nombre             string  `json:"nombre"`
	Categoria          *string `json:"categoria"`
	CantidadTotal      int     `json:"cantidad_total"`
	CantidadDisponible int     `json:"cantidad_disponible"`
	Estado             string  `json:"estado"`
	Ubicacion          *string `json:"ubicacion"`

	types.BaseEntity
}
