package dto

type CreateProveedorDTO struct {
	Nombre       string  `json:"nombre" validate:"required"`
	Contacto     *string `json:"contacto" validate:"omitempty"`
	Telefono     *string `json:"telefono" validate:"omitempty"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Direccion    *string `json:"direccion" validate:"omitempty"`
	Especialidad *string `json:"especialidad" validate:"omitempty"`
}

type UpdateProveedorDTO struct {
	Nombre       *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	Contacto     *string `json:"contacto,omitempty" validate:"omitempty"`
	Telefono     *string `json:"telefono,omitempty" validate:"omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion    *string `json:"direccion,omitempty" validate:"omitempty"`
	Especialidad *string `json:"especialidad,omitempty" validate:"omitempty"`
	Activo       *bool   `json:"activo,omitempty"`
}
