package dto

type CreateHerramientaDTO struct {
	Nombre             string  `json:"nombre" validate:"required"`
	Categoria          *string `json:"categoria" validate:"omitempty"`
	CantidadTotal      int     `json:"cantidad_total" validate:"gte=0"`
	CantidadDisponible int     `json:"cantidad_disponible" validate:"gte=0"`
	Ubicacion          *string `json:"ubicacion" validate:"omitempty"`
}

type UpdateHerramientaDTO struct {
	Nombre             *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	Categoria          *string `json:"categoria,omitempty" validate:"omitempty"`
	CantidadTotal      *int    `json:"cantidad_total,omitempty" validate:"omitempty,gte=0"`
	CantidadDisponible *int    `json:"cantidad_disponible,omitempty" validate:"omitempty,gte=0"`
	Estado             *string `json:"estado,omitempty" validate:"omitempty"`
	Ubicacion          *string `json:"ubicacion,omitempty" validate:"omitempty"`
}
