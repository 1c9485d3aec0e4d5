package dto

type CreateClienteDTO struct {
	Nombre       string  `json:"nombre" validate:"required"`
	Telefono     *string `json:"telefono" validate:"omitempty"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Direccion    *string `json:"direccion" validate:"omitempty"`
	Ciudad       *string `json:"ciudad" validate:"omitempty"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty"`
}

type UpdateClienteDTO struct {
	Nombre       *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	Telefono     *string `json:"telefono,omitempty" validate:"omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion    *string `json:"direccion,omitempty" validate:"omitempty"`
	Ciudad       *string `json:"ciudad,omitempty" validate:"omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty" validate:"omitempty"`
}
