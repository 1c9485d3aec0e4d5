package dto

type CreateVehiculoDTO struct {
	Matricula       string  `json:"matricula" validate:"required,matricula"`
	Modelo          string  `json:"modelo" validate:"required"`
	UbicacionActual *string `json:"ubicacion_actual" validate:"omitempty"`
	ConductorID     *string `json:"conductor_id" validate:"omitempty,uuid4"`
}

type UpdateVehiculoDTO struct {
	Matricula       *string `json:"matricula,omitempty" validate:"omitempty,matricula"`
	Modelo          *string `json:"modelo,omitempty" validate:"omitempty,min=1"`
	Disponible      *bool   `json:"disponible,omitempty"`
	UbicacionActual *string `json:"ubicacion_actual,omitempty" validate:"omitempty"`
	ConductorID     *string `json:"conductor_id,omitempty" validate:"omitempty,uuid4"`
}
