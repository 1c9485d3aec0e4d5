package dto

type CreateInstaladorDTO struct {
	Nombre       string  `json:"nombre" validate:"required"`
	Usuario      *string `json:"usuario" validate:"omitempty,min=3"`
	Password     *string `json:"password" validate:"omitempty,min=6"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Telefono     *string `json:"telefono" validate:"omitempty"`
	Especialidad *string `json:"especialidad" validate:"omitempty"`
}

type UpdateInstaladorDTO struct {
	Nombre       *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	Usuario      *string `json:"usuario,omitempty" validate:"omitempty,min=3"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono     *string `json:"telefono,omitempty" validate:"omitempty"`
	Especialidad *string `json:"especialidad,omitempty" validate:"omitempty"`
	Activo       *bool   `json:"activo,omitempty"`
}
