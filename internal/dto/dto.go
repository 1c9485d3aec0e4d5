package dto

// OpcionDTO es un extra con nombre y precio. El precio, si viene, tiene que
// ser positivo.
type OpcionDTO struct {
	Nombre string   `json:"nombre" validate:"required"`
	Precio *float64 `json:"precio" validate:"omitempty,gt=0"`
}
