package dto

import "time"

type CreateProductoEnFabricacionDTO struct {
	NombreProducto            string     `json:"nombre_producto" validate:"required"`
	Cantidad                  int        `json:"cantidad" validate:"required,gt=0"`
	FechaEstimadaFinalizacion *time.Time `json:"fecha_estimada_finalizacion" validate:"omitempty"`
}

type UpdateProductoEnFabricacionDTO struct {
	NombreProducto            *string    `json:"nombre_producto,omitempty" validate:"omitempty,min=1"`
	Estado                    *string    `json:"estado,omitempty" validate:"omitempty"`
	Cantidad                  *int       `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	FechaEstimadaFinalizacion *time.Time `json:"fecha_estimada_finalizacion,omitempty" validate:"omitempty"`
	FechaRealFinalizacion     *time.Time `json:"fecha_real_finalizacion,omitempty" validate:"omitempty"`
}
